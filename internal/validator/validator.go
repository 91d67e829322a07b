// Package validator checks that a translation is written in the expected
// target language.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/civiclink/internal/languages"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// Detector reports the ISO 639-1 code of the language text is written in,
// and which codes it can recognise at all.
type Detector interface {
	DetectISO(text string) (string, bool)
	Supports(code string) bool
}

// Validator checks translated text against its target language.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det Detector
}

func New(det Detector) *Validator {
	return &Validator{det: det}
}

// IsValid returns true when translatedText appears to be written in
// targetLang. targetLang may be a code ("es", "zh-CN") or a provider
// language name ("spanish", "filipino").
//
// Short texts, texts whose language cannot be determined and targets the
// detector does not know pass. When the
// detected language differs the returned error names both codes.
func (v *Validator) IsValid(translatedText, targetLang string) (bool, error) {
	want := baseCode(languages.ToCode(targetLang))
	if want == "" || want == "auto" || !v.det.Supports(want) {
		return true, nil
	}

	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}

	if !strings.EqualFold(detected, want) {
		return false, fmt.Errorf("expected %s but detected %s", want, detected)
	}
	return true, nil
}

// baseCode drops any region subtag: zh-CN -> zh.
func baseCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		return code[:i]
	}
	return code
}
