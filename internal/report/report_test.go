// internal/report/report_test.go
package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/temno/internal/appconfig"
	"github.com/mwiater/temno/internal/chunker"
)

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func intPtr(v int) *int { return &v }

func TestSummarizeTruncatesPreview(t *testing.T) {
	var buf bytes.Buffer
	Summarize(&buf, "/data/book.txt", strings.Repeat("x", 50), 10)

	out := buf.String()
	if !strings.Contains(out, "book.txt") {
		t.Fatalf("expected file name in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Characters: 50") {
		t.Fatalf("expected character count, got:\n%s", out)
	}
	if !strings.Contains(out, truncationMarker) {
		t.Fatalf("expected truncation marker, got:\n%s", out)
	}
}

func TestSummarizeChunksBoundsPreviews(t *testing.T) {
	chunks := []chunker.Chunk{
		{Offset: 0, Text: "one two three", Words: 3},
		{Offset: 2, Text: "three four five", Words: 3},
		{Offset: 4, Text: "five six", Words: 2},
	}

	var buf bytes.Buffer
	SummarizeChunks(&buf, chunks, 2, 400)

	out := buf.String()
	if !strings.Contains(out, "Total chunks: 3") {
		t.Fatalf("expected total chunk count, got:\n%s", out)
	}
	if !strings.Contains(out, "Chunk 2") {
		t.Fatalf("expected second chunk preview, got:\n%s", out)
	}
	if strings.Contains(out, "Chunk 3") {
		t.Fatalf("preview limit of 2 exceeded:\n%s", out)
	}
}

func TestRunSummarizesAndChunks(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "alpha.txt", "First sentence here. Second sentence follows. Third one ends.")
	writeCorpusFile(t, dir, "beta.txt", "Plain words without much punctuation at all")

	cfg := &appconfig.Config{
		DataDir:   dir,
		Chunk:     true,
		ChunkSize: 6,
		Overlap:   intPtr(2),
		Method:    "sentence",
	}

	var buf bytes.Buffer
	if err := Run(&buf, cfg); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := buf.String()
	alpha := strings.Index(out, "alpha.txt")
	beta := strings.Index(out, "beta.txt")
	if alpha == -1 || beta == -1 {
		t.Fatalf("expected both files in output, got:\n%s", out)
	}
	if alpha > beta {
		t.Fatal("files not processed in sorted order")
	}
	if !strings.Contains(out, "Total chunks:") {
		t.Fatalf("expected chunk summaries, got:\n%s", out)
	}
}

func TestRunIsolatesPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a_good.txt", "Readable text. Nothing wrong here.")
	if err := os.WriteFile(filepath.Join(dir, "b_bad.txt"), []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	writeCorpusFile(t, dir, "c_good.txt", "Also fine. Still readable.")

	cfg := &appconfig.Config{DataDir: dir, Chunk: true}

	var buf bytes.Buffer
	if err := Run(&buf, cfg); err != nil {
		t.Fatalf("Run() should not fail on a per-file error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Failed to process b_bad.txt") {
		t.Fatalf("expected per-file failure report, got:\n%s", out)
	}
	if !strings.Contains(out, "a_good.txt") || !strings.Contains(out, "c_good.txt") {
		t.Fatalf("expected processing to continue past the bad file, got:\n%s", out)
	}
}

func TestRunRejectsBadConfigurationBeforeAnyWork(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a.txt", "Some text.")

	cfg := &appconfig.Config{
		DataDir:   dir,
		Chunk:     true,
		ChunkSize: 50,
		Overlap:   intPtr(50),
	}

	var buf bytes.Buffer
	err := Run(&buf, cfg)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output before the configuration error, got:\n%s", buf.String())
	}
}

func TestRunReportsMissingDataDir(t *testing.T) {
	cfg := &appconfig.Config{DataDir: filepath.Join(t.TempDir(), "nope")}

	var buf bytes.Buffer
	err := Run(&buf, cfg)
	if err == nil {
		t.Fatal("expected environment error for missing data directory")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected a descriptive error, got %v", err)
	}
}

func TestRunEmptyDirAndFilterMiss(t *testing.T) {
	dir := t.TempDir()
	cfg := &appconfig.Config{DataDir: dir}

	var buf bytes.Buffer
	if err := Run(&buf, cfg); err != nil {
		t.Fatalf("Run() on empty dir failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No .txt files found") {
		t.Fatalf("expected empty-directory notice, got:\n%s", buf.String())
	}

	writeCorpusFile(t, dir, "real.txt", "Text.")
	cfg.Filter = "*Summary*"
	buf.Reset()
	if err := Run(&buf, cfg); err != nil {
		t.Fatalf("Run() with unmatched filter failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No files matched the filter") {
		t.Fatalf("expected filter-miss notice, got:\n%s", buf.String())
	}
}
