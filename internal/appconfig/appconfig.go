// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultDataDir is the directory scanned for corpus text files.
	defaultDataDir = "Data"
	// defaultChunkSize is the word-count budget per chunk.
	defaultChunkSize = 200
	// defaultOverlap is the number of words repeated between consecutive chunks.
	defaultOverlap = 50
	// defaultMethod is the chunking strategy applied when none is configured.
	defaultMethod = "sentence"
	// defaultPreviewChunks is how many chunk previews are printed per file.
	defaultPreviewChunks = 3
	// defaultPreviewChars bounds file and chunk previews.
	defaultPreviewChars = 400
)

// Config represents the top-level application configuration.
type Config struct {
	DataDir       string `json:"dataDir,omitempty"`
	Chunk         bool   `json:"chunk"`
	ChunkSize     int    `json:"chunkSize,omitempty"`
	Overlap       *int   `json:"overlap,omitempty"`
	Method        string `json:"method,omitempty"`
	PreviewChunks int    `json:"previewChunks,omitempty"`
	PreviewChars  int    `json:"previewChars,omitempty"`
	Filter        string `json:"filter,omitempty"`
	Debug         bool   `json:"debug"`
	LogFile       string `json:"logFile,omitempty"`
	ConfigPath    string `json:"-"`
}

// DataDirPath returns the configured data directory, applying the default if unset.
func (c Config) DataDirPath() string {
	if dir := strings.TrimSpace(c.DataDir); dir != "" {
		return dir
	}
	return defaultDataDir
}

// ChunkSizeWords returns the word-count budget per chunk.
func (c Config) ChunkSizeWords() int {
	if c.ChunkSize <= 0 {
		return defaultChunkSize
	}
	return c.ChunkSize
}

// OverlapWords returns the configured overlap. Overlap is a pointer field so
// an explicit zero survives the default.
func (c Config) OverlapWords() int {
	if c.Overlap == nil {
		return defaultOverlap
	}
	return *c.Overlap
}

// ChunkMethod returns the configured chunking method name.
func (c Config) ChunkMethod() string {
	if m := strings.TrimSpace(c.Method); m != "" {
		return m
	}
	return defaultMethod
}

// PreviewChunkCount returns how many chunk previews to print per file.
func (c Config) PreviewChunkCount() int {
	if c.PreviewChunks <= 0 {
		return defaultPreviewChunks
	}
	return c.PreviewChunks
}

// PreviewCharLimit returns the preview bound in runes.
func (c Config) PreviewCharLimit() int {
	if c.PreviewChars <= 0 {
		return defaultPreviewChars
	}
	return c.PreviewChars
}

// FilterPattern returns the glob applied to file names, defaulting to match-all.
func (c Config) FilterPattern() string {
	if p := strings.TrimSpace(c.Filter); p != "" {
		return p
	}
	return "*"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "temno.log"
}

// configSchema describes the shape of the JSON configuration file.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"dataDir":       map[string]any{"type": "string"},
		"chunk":         map[string]any{"type": "boolean"},
		"chunkSize":     map[string]any{"type": "integer", "minimum": 1},
		"overlap":       map[string]any{"type": "integer", "minimum": 0},
		"method":        map[string]any{"type": "string", "enum": []string{"sentence", "word"}},
		"previewChunks": map[string]any{"type": "integer", "minimum": 1},
		"previewChars":  map[string]any{"type": "integer", "minimum": 1},
		"filter":        map[string]any{"type": "string"},
		"debug":         map[string]any{"type": "boolean"},
		"logFile":       map[string]any{"type": "string"},
	},
}

// ValidateBytes checks raw JSON configuration against the schema.
func ValidateBytes(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateFile validates the configuration file at path against the schema.
func ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	return ValidateBytes(raw)
}

// Load reads and validates the application configuration from the specified
// path. A missing file at the default path is not an error; defaults apply.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := ValidateBytes(raw); err != nil {
		return Config{}, err
	}

	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}
