// Package languages holds the static language tables used by the
// translation pipeline: the short-code to provider-name mapping, the civic
// language catalogue and the default target allow-list.
package languages

import "strings"

// Language describes a language offered in the civic UI.
type Language struct {
	Name   string `json:"name"`
	Native string `json:"native"`
	Code   string `json:"code"`
	Flag   string `json:"flag"`
}

// providerNames maps short codes to the names providers expect. Codes that
// are not listed are passed through as-is; providers accept both forms.
var providerNames = map[string]string{
	"es": "spanish",
	"zh": "zh-CN",
	"ar": "arabic",
	"hi": "hindi",
	"ko": "korean",
	"vi": "vietnamese",
	"tl": "filipino",
}

// CivicTargets are the target languages accepted by the public translate
// endpoint.
var CivicTargets = []string{"es", "zh", "ar", "hi", "ko", "vi", "tl"}

var civic = []Language{
	{Name: "english", Native: "English", Code: "en", Flag: "🇺🇸"},
	{Name: "spanish", Native: "Español", Code: "es", Flag: "🇪🇸"},
	{Name: "chinese (simplified)", Native: "中文", Code: "zh", Flag: "🇨🇳"},
	{Name: "arabic", Native: "العربية", Code: "ar", Flag: "🇸🇦"},
	{Name: "hindi", Native: "हिन्दी", Code: "hi", Flag: "🇮🇳"},
	{Name: "korean", Native: "한국어", Code: "ko", Flag: "🇰🇷"},
	{Name: "vietnamese", Native: "Tiếng Việt", Code: "vi", Flag: "🇻🇳"},
	{Name: "filipino", Native: "Tagalog", Code: "tl", Flag: "🇵🇭"},
	{Name: "french", Native: "Français", Code: "fr", Flag: "🇫🇷"},
	{Name: "german", Native: "Deutsch", Code: "de", Flag: "🇩🇪"},
	{Name: "portuguese", Native: "Português", Code: "pt", Flag: "🇵🇹"},
	{Name: "japanese", Native: "日本語", Code: "ja", Flag: "🇯🇵"},
	{Name: "russian", Native: "Русский", Code: "ru", Flag: "🇷🇺"},
	{Name: "italian", Native: "Italiano", Code: "it", Flag: "🇮🇹"},
	{Name: "dutch", Native: "Nederlands", Code: "nl", Flag: "🇳🇱"},
	{Name: "swedish", Native: "Svenska", Code: "sv", Flag: "🇸🇪"},
	{Name: "norwegian", Native: "Norsk", Code: "no", Flag: "🇳🇴"},
	{Name: "danish", Native: "Dansk", Code: "da", Flag: "🇩🇰"},
	{Name: "finnish", Native: "Suomi", Code: "fi", Flag: "🇫🇮"},
	{Name: "polish", Native: "Polski", Code: "pl", Flag: "🇵🇱"},
	{Name: "czech", Native: "Čeština", Code: "cs", Flag: "🇨🇿"},
	{Name: "hungarian", Native: "Magyar", Code: "hu", Flag: "🇭🇺"},
	{Name: "romanian", Native: "Română", Code: "ro", Flag: "🇷🇴"},
	{Name: "bulgarian", Native: "Български", Code: "bg", Flag: "🇧🇬"},
	{Name: "greek", Native: "Ελληνικά", Code: "el", Flag: "🇬🇷"},
	{Name: "turkish", Native: "Türkçe", Code: "tr", Flag: "🇹🇷"},
	{Name: "hebrew", Native: "עברית", Code: "he", Flag: "🇮🇱"},
	{Name: "persian", Native: "فارسی", Code: "fa", Flag: "🇮🇷"},
	{Name: "urdu", Native: "اردو", Code: "ur", Flag: "🇵🇰"},
	{Name: "bengali", Native: "বাংলা", Code: "bn", Flag: "🇧🇩"},
	{Name: "tamil", Native: "தமிழ்", Code: "ta", Flag: "🇮🇳"},
	{Name: "telugu", Native: "తెలుగు", Code: "te", Flag: "🇮🇳"},
	{Name: "marathi", Native: "मराठी", Code: "mr", Flag: "🇮🇳"},
	{Name: "gujarati", Native: "ગુજરાતી", Code: "gu", Flag: "🇮🇳"},
	{Name: "punjabi", Native: "ਪੰਜਾਬੀ", Code: "pa", Flag: "🇮🇳"},
	{Name: "thai", Native: "ไทย", Code: "th", Flag: "🇹🇭"},
	{Name: "indonesian", Native: "Bahasa Indonesia", Code: "id", Flag: "🇮🇩"},
	{Name: "malay", Native: "Bahasa Melayu", Code: "ms", Flag: "🇲🇾"},
	{Name: "swahili", Native: "Kiswahili", Code: "sw", Flag: "🇰🇪"},
	{Name: "amharic", Native: "አማርኛ", Code: "am", Flag: "🇪🇹"},
	{Name: "hausa", Native: "Hausa", Code: "ha", Flag: "🇳🇬"},
	{Name: "yoruba", Native: "Yorùbá", Code: "yo", Flag: "🇳🇬"},
	{Name: "igbo", Native: "Igbo", Code: "ig", Flag: "🇳🇬"},
	{Name: "zulu", Native: "isiZulu", Code: "zu", Flag: "🇿🇦"},
	{Name: "xhosa", Native: "isiXhosa", Code: "xh", Flag: "🇿🇦"},
	{Name: "afrikaans", Native: "Afrikaans", Code: "af", Flag: "🇿🇦"},
}

var nameToCode = func() map[string]string {
	m := make(map[string]string, len(civic))
	for _, l := range civic {
		m[l.Name] = l.Code
	}
	return m
}()

// ProviderName returns the provider-facing name for code, or code itself
// when no mapping exists.
func ProviderName(code string) string {
	if name, ok := providerNames[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// ToCode converts a language name such as "spanish" back to its short
// code. Anything that is not a known name is returned unchanged.
func ToCode(nameOrCode string) string {
	if code, ok := nameToCode[strings.ToLower(strings.TrimSpace(nameOrCode))]; ok {
		return code
	}
	return nameOrCode
}

// Civic returns a copy of the civic language catalogue.
func Civic() []Language {
	out := make([]Language, len(civic))
	copy(out, civic)
	return out
}

// Lookup finds a civic language by code or name.
func Lookup(nameOrCode string) (Language, bool) {
	code := strings.ToLower(ToCode(nameOrCode))
	for _, l := range civic {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsAllowed reports whether lang is in allowed. Codes and names are both
// accepted; an empty allow-list permits everything.
func IsAllowed(lang string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	code := strings.ToLower(ToCode(lang))
	for _, a := range allowed {
		if strings.ToLower(ToCode(a)) == code {
			return true
		}
	}
	return false
}
