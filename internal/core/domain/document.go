package domain

// Document represents the single ingested source document.
// It is read once at startup and immutable thereafter.
type Document struct {
	// Path is the location the document was read from.
	Path string

	// Fingerprint is a content hash used to key the corpus cache.
	Fingerprint string

	// Pages holds the normalised text of each page, in document order.
	// Pages that normalised to empty text are dropped during ingestion.
	Pages []string
}

// Corpus is the read-only outcome of ingestion: the normalised document
// and its ordered chunks. It is built once at startup and shared across
// concurrent query pipelines without locking.
type Corpus struct {
	// Document is the ingested document.
	Document Document

	// Chunks is the corpus-wide chunk sequence. Chunks[i].Position == i.
	Chunks []Chunk

	// Vectors holds the chunk embeddings; Vectors[i] belongs to Chunks[i].
	Vectors [][]float32
}

// Chunk is a retrievable unit within the document: a maximal run of
// consecutive sentences from one page whose adjacent embedding similarity
// stayed at or above the chunking threshold.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Position is the ordinal position in the corpus-wide chunk sequence.
	// It doubles as the chunk's id inside the vector index.
	Position int

	// Page is the index of the page the chunk was cut from.
	Page int

	// Content is the chunk text. Always non-empty after trimming.
	Content string
}
