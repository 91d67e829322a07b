package quality

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	ten := strings.Repeat("a", 10)

	tests := []struct {
		name       string
		original   string
		translated string
		want       float64
	}{
		{"clean translation", "Hello world.", "Hola mundo.", 1.0},
		{"empty original", "", "x", 0.55},
		{"both empty", "", "", 0.55},
		{"no trailing punctuation", "Hello world.", "Hola mundo", 0.9},
		{"question mark ending", "Where do I vote?", "¿Dónde voto?", 1.0},
		{"exclamation ending", "Vote today!", "¡Vota hoy!", 1.0},
		{"ratio exactly 0.1", ten, "a", 0.75},
		{"ratio exactly 0.5", ten, "abcd.", 1.0},
		{"ratio exactly 2.0", ten, strings.Repeat("b", 19) + ".", 1.0},
		{"ratio exactly 3.0", ten, strings.Repeat("b", 29) + ".", 0.85},
		{"ratio above 3.0", ten, strings.Repeat("b", 30) + ".", 0.65},
		{"ratio below 0.1", strings.Repeat("a", 20), "b", 0.55},
		{"all artifacts", "abcd", "[a]...??!!.", 0.6},
		{"artifact counted once", "Hello there friend.", "Hmm... wait... ok...", 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.original, tt.translated), 1e-9)
		})
	}
}

func TestScore_UsesCharactersNotBytes(t *testing.T) {
	// 4 runes against 4 runes; byte lengths differ by a factor of two.
	assert.InDelta(t, 1.0, Score("abc.", "абв."), 1e-9)
}

func TestScore_AlwaysBounded(t *testing.T) {
	alphabet := []rune("ab .!?[]…й漢")
	rng := rand.New(rand.NewSource(42))

	randomText := func() string {
		n := rng.Intn(40)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 500; i++ {
		original, translated := randomText(), randomText()
		s := Score(original, translated)
		assert.GreaterOrEqual(t, s, 0.0, "original=%q translated=%q", original, translated)
		assert.LessOrEqual(t, s, 1.0, "original=%q translated=%q", original, translated)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-0.2, 0, 1))
	assert.Equal(t, 1.0, clamp(1.3, 0, 1))
	assert.Equal(t, 0.4, clamp(0.4, 0, 1))
}
