package driven

// TextNormaliser canonicalises raw extracted text before chunking.
// Normalisation is deterministic and idempotent: normalising already
// normalised text changes nothing.
type TextNormaliser interface {
	// Normalise returns the canonical form of the text.
	Normalise(text string) string
}
