package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"latin passthrough", "Hello World", "hello-world"},
		{"ukrainian transliteration", "Привіт Світ", "pryvit-svit"},
		{"ukrainian specials", "Щастя їжака", "shchastia-izhaka"},
		{"soft sign dropped", "Львів", "lviv"},
		{"accents stripped", "Café au Lait", "cafe-au-lait"},
		{"punctuation collapsed", "one -- two!! three", "one-two-three"},
		{"leading and trailing junk", "  ...tag...  ", "tag"},
		{"digits kept", "Go 1.23 release", "go-1-23-release"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.input))
		})
	}
}

// Slug derivation is deterministic: two entities with the same title get the
// same slug. Collisions are possible and tolerated at this layer.
func TestFromDeterministic(t *testing.T) {
	first := From("Привіт Світ")
	second := From("Привіт Світ")
	assert.Equal(t, first, second)
	assert.Equal(t, "pryvit-svit", first)
}
