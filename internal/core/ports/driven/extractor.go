package driven

import "context"

// PageExtractor produces the ordered raw page texts of the source document.
// Byte-level text extraction is an external collaborator; adapters wrap a
// tool or format and hand back plain page strings.
type PageExtractor interface {
	// Name returns the extractor identifier for logging and configuration.
	Name() string

	// Pages reads the document at path and returns one raw string per page,
	// in document order. A missing or unreadable document is an error.
	Pages(ctx context.Context, path string) ([]string, error)
}
