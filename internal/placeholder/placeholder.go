// Package placeholder keeps content that must not be translated (URLs,
// e-mail addresses, HTML tags and code spans) out of provider input. Protect
// swaps each occurrence for a numbered marker ([PH0], [PH1], ...) and Restore
// puts the originals back after translation.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// fenced code blocks: ```...``` (non-greedy, may span lines)
	fencedCode = "(?s:```.*?```)"

	inlineCode = "`[^`]+`"

	// opening, closing and self-closing tags
	htmlTag = `<[^>]+>`

	// trailing sentence punctuation is not part of the URL
	url = `\bhttps?://[^\s<>"\[\]]*[^\s<>"\[\].,;:!?)]`

	email = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`
)

var (
	// Alternatives are tried in order at each position, so a tag wins over
	// the URL in its attribute and a code span over anything inside it.
	reProtected = regexp.MustCompile(strings.Join([]string{fencedCode, inlineCode, htmlTag, url, email}, "|"))

	rePlaceholder = regexp.MustCompile(`\[PH(\d+)\]`)
)

// Protect replaces protected content with placeholders numbered in order of
// appearance. It returns the modified text and the captured originals for
// Restore. Matching is a single pass over the input, so a placeholder never
// ends up inside another protected match.
func Protect(text string) (string, []string) {
	var markers []string

	text = reProtected.ReplaceAllStringFunc(text, func(match string) string {
		id := fmt.Sprintf("[PH%d]", len(markers))
		markers = append(markers, match)
		return id
	})

	return text, markers
}

// Restore substitutes [PHn] markers in text with the originals captured by
// Protect. Unknown indices are left as-is.
func Restore(text string, markers []string) string {
	return rePlaceholder.ReplaceAllStringFunc(text, func(match string) string {
		sub := rePlaceholder.FindStringSubmatch(match)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// Missing returns the indices of markers that are absent from text.
func Missing(text string, markers []string) []int {
	var missing []int
	for i := range markers {
		if !strings.Contains(text, fmt.Sprintf("[PH%d]", i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
