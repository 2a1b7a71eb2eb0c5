// internal/chunker/chunker.go
// Package chunker splits documents into ordered sequences of overlapping
// text windows, measured in whitespace-delimited words.
package chunker

import (
	"errors"
	"fmt"
)

// ErrWindow indicates an invalid chunk size / overlap combination.
var ErrWindow = errors.New("invalid chunk window")

// ErrMethod indicates an unrecognized chunking method.
var ErrMethod = errors.New("unknown chunking method")

// Method selects one of the two chunking strategies.
type Method string

const (
	// MethodSentence groups whole sentences into windows sized by word count.
	MethodSentence Method = "sentence"
	// MethodWord slides a fixed-size word window over the document.
	MethodWord Method = "word"
)

// ParseMethod converts a method name into a Method.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case MethodSentence:
		return MethodSentence, nil
	case MethodWord:
		return MethodWord, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrMethod, name, MethodSentence, MethodWord)
	}
}

// Chunk is one window of the source document. Offset is the word index
// (word method) or sentence index (sentence method) where the window starts.
type Chunk struct {
	Offset int
	Text   string
	Words  int
}

// Options controls how a document is chunked.
type Options struct {
	Method    Method
	ChunkSize int
	Overlap   int
}

// Validate checks the options without chunking anything, so callers can
// reject a bad configuration before any per-file work starts.
func (o Options) Validate() error {
	if _, err := ParseMethod(string(o.Method)); err != nil {
		return err
	}
	return validateWindow(o.ChunkSize, o.Overlap)
}

// Split chunks text using the strategy named in opts.
func Split(text string, opts Options) ([]Chunk, error) {
	switch opts.Method {
	case MethodSentence:
		return BySentences(text, opts.ChunkSize, opts.Overlap)
	case MethodWord:
		return ByWords(text, opts.ChunkSize, opts.Overlap)
	default:
		return nil, fmt.Errorf("%w: %q", ErrMethod, opts.Method)
	}
}

// validateWindow rejects window configurations before any chunking work
// begins. A valid window has a positive chunk size, a non-negative overlap,
// and an overlap strictly smaller than the chunk size.
func validateWindow(chunkSize, overlap int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be greater than zero (got %d)", ErrWindow, chunkSize)
	}
	if overlap < 0 {
		return fmt.Errorf("%w: overlap must be zero or greater (got %d)", ErrWindow, overlap)
	}
	if overlap >= chunkSize {
		return fmt.Errorf("%w: overlap (%d) must be smaller than chunk size (%d)", ErrWindow, overlap, chunkSize)
	}
	return nil
}
