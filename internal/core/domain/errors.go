package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Startup errors (document, extraction, chunking, index build) are fatal:
// the service must not begin answering questions in a partially-initialised
// state. Provider errors are recovered close to the call site and degrade
// the affected operation instead of propagating.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Startup Errors.

	// ErrDocumentNotFound indicates the source document is missing or unreadable.
	ErrDocumentNotFound = errors.New("source document not found")

	// ErrNoExtractableText indicates the source document yielded no usable text.
	ErrNoExtractableText = errors.New("document contains no extractable text")

	// ErrNoChunks indicates chunking produced no chunks for the document.
	ErrNoChunks = errors.New("chunking produced no chunks")

	// Configuration Errors.

	// ErrNoVectors indicates an index build was attempted with no vectors.
	// This is a configuration error, distinct from provider failures.
	ErrNoVectors = errors.New("no vectors to index")

	// ErrDimensionMismatch indicates a vector does not match the index dimension.
	// Embedding dimension is fixed corpus-wide by the first vector.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// Provider Errors.

	// ErrEmbeddingUnavailable indicates the embedding service is not configured
	// or unreachable. Retrieval degrades to empty results without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the generation service is not configured.
	// Answers degrade to a diagnostic string without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
