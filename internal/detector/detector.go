// Package detector guesses the language of a text. It is used to resolve the
// "auto" source language for providers that need an explicit language pair.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// civicLanguages restricts detection to the languages the service offers,
// which keeps model loading cheap and avoids exotic false positives.
var civicLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.Chinese,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Korean,
	lingua.Vietnamese,
	lingua.Tagalog,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Japanese,
	lingua.Russian,
	lingua.Italian,
}

type Detector struct {
	detector  lingua.LanguageDetector
	supported map[string]bool
}

// New builds a detector. Building is expensive; reuse the instance.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(civicLanguages...).
		Build()

	supported := make(map[string]bool, len(civicLanguages))
	for _, l := range civicLanguages {
		supported[strings.ToLower(l.IsoCode639_1().String())] = true
	}

	return &Detector{detector: detector, supported: supported}
}

// Supports reports whether the detector can recognise the language with the
// given ISO 639-1 code.
func (d *Detector) Supports(code string) bool {
	return d.supported[strings.ToLower(code)]
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lowercase ISO 639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
