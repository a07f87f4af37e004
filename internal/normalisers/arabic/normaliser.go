// Package arabic provides canonicalisation of Arabic text.
//
// Normalisation is a pure, total function: it maps letter variants to
// canonical forms, strips diacritics and characters outside the Arabic
// block (plus ASCII letters and digits), and collapses whitespace. The
// same canonical form is applied to pages at ingestion and could be
// applied to queries, so downstream similarity comparisons see consistent
// text.
package arabic

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/murshid/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TextNormaliser = (*Normaliser)(nil)

// Arabic block and diacritic boundaries.
const (
	arabicBlockLo = '؀'
	arabicBlockHi = 'ۿ'
	diacriticLo   = 'ً'
	diacriticHi   = 'ٟ'
)

// Letter variant mappings to canonical forms.
var variants = map[rune]rune{
	'أ': 'ا', // alef with hamza above -> alef
	'إ': 'ا', // alef with hamza below -> alef
	'آ': 'ا', // alef with madda -> alef
	'ى': 'ي', // alef maksura -> ya
	'ة': 'ه', // ta marbuta -> ha
}

// Normalise canonicalises Arabic text for consistent comparison.
// It is idempotent: Normalise(Normalise(x)) == Normalise(x).
// Empty input yields empty output; there are no failure modes.
func Normalise(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		if mapped, ok := variants[r]; ok {
			r = mapped
		}

		switch {
		case r >= diacriticLo && r <= diacriticHi:
			// Diacritical marks are dropped entirely.
		case unicode.IsSpace(r):
			pendingSpace = true
		case keep(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Normaliser adapts Normalise to the TextNormaliser port.
type Normaliser struct{}

// New creates a new Arabic normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise canonicalises the text. See the package-level Normalise.
func (n *Normaliser) Normalise(text string) string {
	return Normalise(text)
}

// keep reports whether a rune survives normalisation: the Arabic block,
// ASCII letters, and ASCII digits.
func keep(r rune) bool {
	if r >= arabicBlockLo && r <= arabicBlockHi {
		return true
	}
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return true
	}
	return r >= '0' && r <= '9'
}
