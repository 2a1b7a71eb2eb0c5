// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoad verifies that a valid configuration file loads cleanly, defaults
// apply for omitted fields, and malformed or out-of-schema files are rejected
// with descriptive errors.
func TestLoad(t *testing.T) {
	validConfig := `{
        "dataDir": "corpus",
        "chunk": true,
        "chunkSize": 120,
        "overlap": 0,
        "method": "word",
        "previewChunks": 5
    }`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(validConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.DataDirPath() != "corpus" {
		t.Fatalf("expected dataDir corpus, got %q", cfg.DataDirPath())
	}
	if cfg.ChunkSizeWords() != 120 {
		t.Fatalf("expected chunk size 120, got %d", cfg.ChunkSizeWords())
	}
	if cfg.OverlapWords() != 0 {
		t.Fatalf("explicit zero overlap must survive loading, got %d", cfg.OverlapWords())
	}
	if cfg.ChunkMethod() != "word" {
		t.Fatalf("expected method word, got %q", cfg.ChunkMethod())
	}
	if cfg.PreviewCharLimit() != 400 {
		t.Fatalf("expected default preview chars 400, got %d", cfg.PreviewCharLimit())
	}
	if cfg.FilterPattern() != "*" {
		t.Fatalf("expected default filter *, got %q", cfg.FilterPattern())
	}

	invalidJSON := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(invalidJSON, []byte(`{ "chunkSize": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalidJSON); err == nil {
		t.Fatal("expected error for invalid JSON")
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for explicit nonexistent path")
	}
}

func TestLoadDefaultPathMissingIsNotAnError(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without a config file should use defaults, got %v", err)
	}
	if cfg.ChunkSizeWords() != 200 || cfg.OverlapWords() != 50 {
		t.Fatalf("unexpected defaults: size=%d overlap=%d", cfg.ChunkSizeWords(), cfg.OverlapWords())
	}
	if cfg.ChunkMethod() != "sentence" {
		t.Fatalf("expected default method sentence, got %q", cfg.ChunkMethod())
	}
	if cfg.PreviewChunkCount() != 3 {
		t.Fatalf("expected default preview chunks 3, got %d", cfg.PreviewChunkCount())
	}
	if cfg.DataDirPath() != "Data" {
		t.Fatalf("expected default data dir, got %q", cfg.DataDirPath())
	}
}

func TestValidateBytesRejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"wrong chunkSize type", `{"chunkSize": "large"}`},
		{"negative overlap", `{"overlap": -5}`},
		{"unknown method", `{"method": "paragraph"}`},
		{"zero chunkSize", `{"chunkSize": 0}`},
	}
	for _, tc := range cases {
		err := ValidateBytes([]byte(tc.raw))
		if err == nil {
			t.Fatalf("%s: expected schema validation error", tc.name)
		}
		if !strings.Contains(err.Error(), "invalid config") {
			t.Fatalf("%s: expected an invalid-config error, got %v", tc.name, err)
		}
	}
}

func TestValidateBytesAcceptsMinimalConfig(t *testing.T) {
	if err := ValidateBytes([]byte(`{}`)); err != nil {
		t.Fatalf("empty object should validate, got %v", err)
	}
	if err := ValidateBytes([]byte(`{"method": "sentence", "overlap": 50}`)); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}
