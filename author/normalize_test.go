package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims", input: "  MIT \n", want: "MIT"},
		{name: "composes accents", input: "Jose\u0301", want: "Jos\u00e9"},
		{name: "already composed", input: "Jos\u00e9", want: "Jos\u00e9"},
		{name: "inner whitespace kept", input: "Max  Planck", want: "Max  Planck"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalization must be idempotent")
		})
	}
}

func TestNormalize_EquivalentEncodings(t *testing.T) {
	composed := "Universit\u00e4t Z\u00fcrich"
	decomposed := norm.NFD.String(composed)
	assert.NotEqual(t, composed, decomposed)
	assert.Equal(t, Normalize(composed), Normalize(decomposed))
}

func TestParseForm(t *testing.T) {
	form, ok := ParseForm("NFKC")
	assert.True(t, ok)
	assert.Equal(t, norm.NFKC, form)

	form, ok = ParseForm("")
	assert.True(t, ok)
	assert.Equal(t, norm.NFC, form)

	_, ok = ParseForm("nfd")
	assert.False(t, ok)
}
