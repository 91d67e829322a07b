// Package chunker splits long texts into provider-safe chunks. Splits only
// happen at sentence boundaries; a sentence is never cut, so a single
// sentence longer than the limit is emitted as its own oversized chunk.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxChunkSize is the chunk limit, in characters, used when callers
// pass a non-positive size.
const DefaultMaxChunkSize = 5000

// Segment is one chunk of the input in sequence order.
type Segment struct {
	Index   int
	Content string
	// Offset is the byte offset of the chunk's first character in the input.
	// It is a hint only: whitespace between sentences is normalised.
	Offset int
}

// Chunk splits text into pieces of at most maxChars characters.
//
// Text that already fits is returned unchanged as a single element. Longer
// text is split into sentences (a sentence ends at the whitespace run that
// follows '.', '!' or '?'), and sentences are packed greedily, rejoined with
// a single space. Each emitted chunk is trimmed and never empty.
func Chunk(text string, maxChars int) []string {
	chunks := Split(text, maxChars)
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Content
	}
	return out
}

// Split is Chunk with sequence indices and offset hints attached.
func Split(text string, maxChars int) []Segment {
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkSize
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return []Segment{{Index: 0, Content: text, Offset: 0}}
	}

	var (
		chunks  []Segment
		current strings.Builder
		curLen  int
		curOff  int
	)

	flush := func() {
		raw := current.String()
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
			chunks = append(chunks, Segment{
				Index:   len(chunks),
				Content: trimmed,
				Offset:  curOff + lead,
			})
		}
		current.Reset()
		curLen = 0
	}

	for _, s := range splitSentences(text) {
		n := utf8.RuneCountInString(s.text)
		// curLen includes the separator space left after the previous sentence.
		if curLen+n > maxChars {
			flush()
		}
		if curLen == 0 {
			curOff = s.offset
		}
		current.WriteString(s.text)
		current.WriteByte(' ')
		curLen += n + 1
	}
	flush()

	return chunks
}

type sentence struct {
	text   string
	offset int
}

// splitSentences cuts text at every whitespace run preceded by sentence
// punctuation. The whitespace itself is dropped.
func splitSentences(text string) []sentence {
	var out []sentence
	start := 0
	prevEnds := false

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if prevEnds && unicode.IsSpace(r) {
			if i > start {
				out = append(out, sentence{text: text[start:i], offset: start})
			}
			j := i
			for j < len(text) {
				rr, sz := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(rr) {
					break
				}
				j += sz
			}
			start = j
			i = j
			prevEnds = false
			continue
		}
		prevEnds = r == '.' || r == '!' || r == '?'
		i += size
	}

	if start < len(text) {
		out = append(out, sentence{text: text[start:], offset: start})
	}
	return out
}
