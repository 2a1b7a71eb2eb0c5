// internal/corpus/corpus.go
// Package corpus resolves the data directory and loads the plain-text files
// that feed the chunkers.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Resolve returns the absolute path of dir, failing if it does not exist or
// is not a directory.
func Resolve(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve data directory %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("data directory not found at expected location: %s", abs)
		}
		return "", fmt.Errorf("stat data directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("data path exists but is not a directory: %s", abs)
	}
	return abs, nil
}

// ListTextFiles returns the regular files in dir with a case-insensitive
// .txt extension, sorted lexicographically by name.
func ListTextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ".txt" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Filter keeps the files whose base name matches the glob pattern. An empty
// pattern or "*" keeps everything.
func Filter(files []string, pattern string) ([]string, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || pattern == "*" {
		return files, nil
	}

	var matched []string
	for _, path := range files {
		ok, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, path)
		}
	}
	return matched, nil
}

// LoadTextFile reads the whole file as UTF-8 text. Files that are not valid
// UTF-8 are rejected rather than passed through with replacement characters.
func LoadTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file %s is not valid UTF-8 text", path)
	}
	return string(raw), nil
}
