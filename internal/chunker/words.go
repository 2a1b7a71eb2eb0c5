// internal/chunker/words.go
package chunker

import (
	"fmt"
	"strings"
)

// ByWords splits text into fixed-size overlapping word windows. Consecutive
// chunks share exactly overlap words, except possibly the final chunk, which
// may be shorter than chunkSize and overlap less if the document runs out.
func ByWords(text string, chunkSize, overlap int) ([]Chunk, error) {
	if err := validateWindow(chunkSize, overlap); err != nil {
		return nil, err
	}
	step := chunkSize - overlap
	if step <= 0 {
		// Excluded by validateWindow, re-checked so the loop below can
		// never stall.
		return nil, fmt.Errorf("%w: step (%d) must be greater than zero", ErrWindow, step)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var chunks []Chunk
	for i := 0; i < len(words); i += step {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, Chunk{
			Offset: i,
			Text:   strings.Join(words[i:end], " "),
			Words:  end - i,
		})
		if i+chunkSize >= len(words) {
			break
		}
	}
	return chunks, nil
}
