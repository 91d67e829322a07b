package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderName(t *testing.T) {
	tests := map[string]string{
		"es":    "spanish",
		"zh":    "zh-CN",
		"tl":    "filipino",
		"ES":    "spanish",
		"fr":    "fr",
		"auto":  "auto",
		"uk":    "uk",
		"zh-TW": "zh-TW",
	}
	for in, want := range tests {
		assert.Equal(t, want, ProviderName(in), "ProviderName(%q)", in)
	}
}

func TestToCode(t *testing.T) {
	assert.Equal(t, "es", ToCode("spanish"))
	assert.Equal(t, "es", ToCode("Spanish"))
	assert.Equal(t, "zh", ToCode("chinese (simplified)"))
	assert.Equal(t, "tl", ToCode("filipino"))
	assert.Equal(t, "zh-CN", ToCode("zh-CN"))
	assert.Equal(t, "auto", ToCode("auto"))
}

func TestProviderNameRoundTrip(t *testing.T) {
	for _, code := range CivicTargets {
		name := ProviderName(code)
		if name == "zh-CN" {
			continue
		}
		assert.Equal(t, code, ToCode(name), "round trip for %q", code)
	}
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("ko")
	assert.True(t, ok)
	assert.Equal(t, "korean", l.Name)

	l, ok = Lookup("vietnamese")
	assert.True(t, ok)
	assert.Equal(t, "vi", l.Code)

	_, ok = Lookup("klingon")
	assert.False(t, ok)
}

func TestCivicReturnsCopy(t *testing.T) {
	a := Civic()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", Civic()[0].Name)
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed("es", CivicTargets))
	assert.True(t, IsAllowed("spanish", CivicTargets))
	assert.True(t, IsAllowed("ZH", CivicTargets))
	assert.False(t, IsAllowed("fr", CivicTargets))
	assert.True(t, IsAllowed("fr", nil))
}
