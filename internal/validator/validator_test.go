package validator

import (
	"testing"

	"github.com/valpere/civiclink/internal/detector"
)

type fixedDetector struct {
	code string
	ok   bool
}

func (f fixedDetector) DetectISO(string) (string, bool) { return f.code, f.ok }

func (f fixedDetector) Supports(code string) bool { return code != "nl" }

const longText = "This is a longer piece of text that should be detected."

func TestIsValid_EmptyTargetLang(t *testing.T) {
	v := New(fixedDetector{code: "en", ok: true})

	valid, err := v.IsValid("Some translated text", "")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true for empty targetLang")
	}
}

func TestIsValid_EmptyTranslation(t *testing.T) {
	v := New(fixedDetector{code: "es", ok: true})

	for _, text := range []string{"", "   "} {
		valid, err := v.IsValid(text, "es")
		if err == nil {
			t.Errorf("expected error for %q", text)
		}
		if valid {
			t.Errorf("expected valid=false for %q", text)
		}
	}
}

func TestIsValid_ShortTextSkipsDetection(t *testing.T) {
	v := New(fixedDetector{code: "en", ok: true})

	valid, err := v.IsValid("Hola", "es")
	if err != nil || !valid {
		t.Errorf("expected short text to pass, got valid=%v err=%v", valid, err)
	}
}

func TestIsValid_Undetermined(t *testing.T) {
	v := New(fixedDetector{ok: false})

	valid, err := v.IsValid(longText, "es")
	if err != nil || !valid {
		t.Errorf("expected undetermined language to pass, got valid=%v err=%v", valid, err)
	}
}

func TestIsValid_TargetForms(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		target   string
		want     bool
	}{
		{name: "code", detected: "es", target: "es", want: true},
		{name: "upper case code", detected: "es", target: "ES", want: true},
		{name: "provider name", detected: "es", target: "spanish", want: true},
		{name: "region subtag", detected: "zh", target: "zh-CN", want: true},
		{name: "filipino name", detected: "tl", target: "filipino", want: true},
		{name: "mismatch", detected: "en", target: "vi", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(fixedDetector{code: tt.detected, ok: true})
			valid, err := v.IsValid(longText, tt.target)
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v (err=%v)", valid, tt.want, err)
			}
			if !tt.want && err == nil {
				t.Error("expected error naming both languages")
			}
		})
	}
}

func TestIsValid_UnsupportedTargetPasses(t *testing.T) {
	v := New(fixedDetector{code: "de", ok: true})

	valid, err := v.IsValid(longText, "nl")
	if err != nil || !valid {
		t.Errorf("expected undetectable target to pass, got valid=%v err=%v", valid, err)
	}
}

func TestIsValid_WithLinguaDetector(t *testing.T) {
	v := New(detector.New())

	valid, err := v.IsValid("Los lugares de votación abren a las siete de la mañana.", "es")
	if err != nil || !valid {
		t.Errorf("expected Spanish text to validate, got valid=%v err=%v", valid, err)
	}

	valid, _ = v.IsValid("Polling places open at seven in the morning on election day.", "es")
	if valid {
		t.Error("expected English text to fail Spanish validation")
	}
}

func TestIsValid_LinguaUnknownLanguages(t *testing.T) {
	v := New(detector.New())

	tests := map[string]string{
		"nl": "De stembureaus gaan om zeven uur 's ochtends open op de verkiezingsdag.",
		"sv": "Vallokalerna öppnar klockan sju på morgonen på valdagen i hela landet.",
	}
	for target, text := range tests {
		valid, err := v.IsValid(text, target)
		if err != nil || !valid {
			t.Errorf("%s: expected pass for language the detector does not know, got valid=%v err=%v", target, valid, err)
		}
	}
}
