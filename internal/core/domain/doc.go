// Package domain defines the core business entities for murshid.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The single ingested document and its normalised pages
//   - Chunk: A retrievable unit produced by semantic chunking
//   - FeedbackRecord: An immutable user rating of a past answer
//   - PipelineState: The per-question state folded through the answer pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
