// internal/chunker/sentence.go
package chunker

import (
	"regexp"
	"strings"
)

// sentenceEnd matches sentence-ending punctuation followed by whitespace.
// The punctuation belongs to the preceding sentence; the whitespace is the
// delimiter.
var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits text into trimmed, non-empty sentences using a
// punctuation heuristic; abbreviations, ellipses, and quoted punctuation are
// not handled specially and may mis-split. Empty or whitespace-only input
// yields nil; text without terminal punctuation yields a single sentence.
func SplitSentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(trimmed, -1) {
		// loc[0] is the punctuation byte; keep it with the sentence.
		if s := strings.TrimSpace(trimmed[start : loc[0]+1]); s != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if tail := strings.TrimSpace(trimmed[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// BySentences splits text into overlapping windows of whole sentences, sized
// by cumulative word count rather than sentence count. A single sentence
// longer than chunkSize is emitted whole as its own chunk; no sentence is
// ever fragmented.
func BySentences(text string, chunkSize, overlap int) ([]Chunk, error) {
	if err := validateWindow(chunkSize, overlap); err != nil {
		return nil, err
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	wordCounts := make([]int, len(sentences))
	for i, s := range sentences {
		wordCounts[i] = len(strings.Fields(s))
	}

	var chunks []Chunk
	n := len(sentences)
	start := 0
	for start < n {
		// Take sentences until the word budget is met or the input ends.
		cum := 0
		end := start
		for end < n && cum < chunkSize {
			cum += wordCounts[end]
			end++
		}

		if joined := strings.TrimSpace(strings.Join(sentences[start:end], " ")); joined != "" {
			chunks = append(chunks, Chunk{
				Offset: start,
				Text:   joined,
				Words:  cum,
			})
		}

		// Advance by whole sentences worth roughly chunkSize-overlap words.
		wordsToAdvance := chunkSize - overlap
		if wordsToAdvance < 1 {
			wordsToAdvance = 1
		}
		advanced := 0
		newStart := start
		for newStart < n && advanced < wordsToAdvance {
			advanced += wordCounts[newStart]
			newStart++
		}
		if newStart <= start {
			// Guarantees termination when the floor above would not move.
			newStart = start + 1
		}
		start = newStart
	}
	return chunks, nil
}
