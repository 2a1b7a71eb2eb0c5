// internal/report/report.go
// Package report prints file summaries and chunk previews for the corpus,
// isolating failures at file granularity.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mwiater/temno/internal/appconfig"
	"github.com/mwiater/temno/internal/chunker"
	"github.com/mwiater/temno/internal/corpus"
	"github.com/mwiater/temno/internal/logging"
	"github.com/mwiater/temno/internal/util"
)

var (
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	errorLine  = color.New(color.FgRed).SprintFunc()
)

const truncationMarker = "... [truncated]"

// Summarize prints the file name, path, character count, and a bounded
// preview of text.
func Summarize(w io.Writer, path, text string, previewChars int) {
	fmt.Fprintln(w, fileStyle.Render("File: "+filepath.Base(path)))
	fmt.Fprintf(w, "Path: %s\n", path)
	fmt.Fprintf(w, "Characters: %d\n", utf8.RuneCountInString(text))
	fmt.Fprintf(w, "\nPreview:\n\n")

	preview, truncated := util.Preview(text, previewChars)
	fmt.Fprintln(w, preview)
	if truncated {
		fmt.Fprintln(w, truncationMarker)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))
}

// SummarizeChunks prints the chunk count and bounded previews of the first
// previewChunks chunks.
func SummarizeChunks(w io.Writer, chunks []chunker.Chunk, previewChunks, previewChars int) {
	fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("Total chunks: %d", len(chunks))))
	for i := 0; i < util.Min(previewChunks, len(chunks)); i++ {
		c := chunks[i]
		fmt.Fprintf(w, "\nChunk %d — %d words — Preview:\n\n", i+1, c.Words)
		preview, truncated := util.Preview(c.Text, previewChars)
		fmt.Fprintln(w, preview)
		if truncated {
			fmt.Fprintln(w, truncationMarker)
		}
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// Run resolves the data directory, lists and filters its text files, and
// summarizes each one in sorted order. When cfg.Chunk is set, each file is
// also chunked and previewed. A failure on one file is reported and the batch
// continues; configuration and environment problems end the run before any
// file is touched.
func Run(w io.Writer, cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	opts := chunker.Options{
		Method:    chunker.Method(cfg.ChunkMethod()),
		ChunkSize: cfg.ChunkSizeWords(),
		Overlap:   cfg.OverlapWords(),
	}
	if cfg.Chunk {
		if err := opts.Validate(); err != nil {
			return err
		}
	}

	dataDir, err := corpus.Resolve(cfg.DataDirPath())
	if err != nil {
		return err
	}

	files, err := corpus.ListTextFiles(dataDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "No .txt files found in %s\n", dataDir)
		return nil
	}

	if pattern := cfg.FilterPattern(); pattern != "*" {
		filtered, err := corpus.Filter(files, pattern)
		if err != nil {
			return err
		}
		if len(filtered) == 0 {
			fmt.Fprintf(w, "No files matched the filter %q in %s\n", pattern, dataDir)
			return nil
		}
		files = filtered
	}

	failures := 0
	for _, path := range files {
		if err := processFile(w, path, cfg, opts); err != nil {
			failures++
			fmt.Fprintln(w, errorLine(fmt.Sprintf("Failed to process %s: %v", filepath.Base(path), err)))
		}
	}
	logging.Event("processed %d files from %s (%d failed)", len(files), dataDir, failures)
	return nil
}

func processFile(w io.Writer, path string, cfg *appconfig.Config, opts chunker.Options) error {
	text, err := corpus.LoadTextFile(path)
	if err != nil {
		return err
	}

	Summarize(w, path, text, cfg.PreviewCharLimit())

	if !cfg.Chunk {
		return nil
	}
	chunks, err := chunker.Split(text, opts)
	if err != nil {
		return err
	}
	SummarizeChunks(w, chunks, cfg.PreviewChunkCount(), cfg.PreviewCharLimit())
	return nil
}
