// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PageExtractor: Produces raw page text from the source document
//   - EmbeddingService: Maps text to fixed-dimension vectors
//   - LLMService: Generates answers from composed prompts
//   - VectorSearcher: Nearest-neighbour search over chunk embeddings
//   - FeedbackStore: Append-only persistence of answer ratings
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - CorpusStore: Chunk/embedding cache. Without it, every startup
//     re-embeds the document.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
