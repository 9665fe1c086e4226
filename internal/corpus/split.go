// Package corpus provides the reference-corpus store and retrieval over it.
package corpus

import "strings"

const (
	// DefaultChunkSize is the target chunk length in characters
	DefaultChunkSize = 1200
	// DefaultChunkOverlap is how many trailing characters carry into the next chunk
	DefaultChunkOverlap = 200
)

// splitSeparators are tried in order; paragraph breaks are preferred over
// line breaks, line breaks over sentence ends.
var splitSeparators = []string{"\n\n", "\n", ". "}

// SplitText splits a document into overlapping chunks of roughly
// DefaultChunkSize characters, preferring to break at paragraph boundaries.
func SplitText(text string) []string {
	return Split(text, DefaultChunkSize, DefaultChunkOverlap)
}

// Split splits text into chunks of at most chunkSize characters with the
// given overlap between consecutive chunks
func Split(text string, chunkSize, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	pieces := splitRecursive(text, chunkSize, splitSeparators)
	return mergePieces(pieces, chunkSize, overlap)
}

// splitRecursive breaks text into pieces no longer than chunkSize, trying
// each separator in turn and falling back to a hard cut
func splitRecursive(text string, chunkSize int, separators []string) []string {
	if len(text) <= chunkSize {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	if len(separators) == 0 {
		// No separator left: hard cut
		var pieces []string
		for start := 0; start < len(text); start += chunkSize {
			end := start + chunkSize
			if end > len(text) {
				end = len(text)
			}
			pieces = append(pieces, text[start:end])
		}
		return pieces
	}

	sep := separators[0]
	parts := strings.Split(text, sep)
	if len(parts) == 1 {
		return splitRecursive(text, chunkSize, separators[1:])
	}

	var pieces []string
	for i, part := range parts {
		if i < len(parts)-1 {
			part += sep
		}
		pieces = append(pieces, splitRecursive(part, chunkSize, separators[1:])...)
	}
	return pieces
}

// mergePieces greedily packs pieces into chunks up to chunkSize, carrying an
// overlap tail from each emitted chunk into the next
func mergePieces(pieces []string, chunkSize, overlap int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() string {
		chunk := strings.TrimSpace(current.String())
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		return chunk
	}

	for _, piece := range pieces {
		if current.Len() > 0 && current.Len()+len(piece) > chunkSize {
			emitted := flush()
			if overlap > 0 && len(emitted) > overlap {
				current.WriteString(emitted[len(emitted)-overlap:])
			}
		}
		current.WriteString(piece)
	}
	flush()

	return chunks
}
