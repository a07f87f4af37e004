package arabic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise_LetterVariants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hamza-bearing alef forms become bare alef",
			input:    "أإآ",
			expected: "ااا",
		},
		{
			name:     "alef maksura becomes ya",
			input:    "مستشفى",
			expected: "مستشفي",
		},
		{
			name:     "ta marbuta becomes ha",
			input:    "مدرسة",
			expected: "مدرسه",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalise(tt.input))
		})
	}
}

func TestNormalise_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "محمد", Normalise("مُحَمَّد"))
}

func TestNormalise_StripsForeignCharacters(t *testing.T) {
	// Punctuation and symbols outside the Arabic block are removed;
	// Latin letters and digits survive.
	assert.Equal(t, "نص abc 123", Normalise("نص! abc… (123)"))
}

func TestNormalise_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "كلمه كلمه", Normalise("  كلمه \t\n  كلمه  "))
}

func TestNormalise_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalise(""))
	assert.Equal(t, "", Normalise("   \t\n  "))
	assert.Equal(t, "", Normalise("!!!???"))
}

func TestNormalise_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"نَصٌّ عَرَبِيٌّ مُشَكَّل",
		"أسئلة إجابات آفاق",
		"mixed عربي and English 42",
		"   spaces \t everywhere   ",
		"مدرسة المستشفى الكبرى",
	}

	for _, input := range inputs {
		once := Normalise(input)
		twice := Normalise(once)
		assert.Equal(t, once, twice, "normalise must be idempotent for %q", input)
	}
}
