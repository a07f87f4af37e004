package domain

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Generative Language cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOllama, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini || p == AIProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Gemini (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible APIs).
	BaseURL string

	// APIKey is the API key (for Gemini/OpenAI).
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds generation provider configuration.
type LLMSettings struct {
	// Provider is the generation service provider.
	Provider AIProvider

	// Model is the generation model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible APIs).
	BaseURL string

	// APIKey is the API key (for Gemini/OpenAI).
	APIKey string
}

// IsConfigured returns true if the generation provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// DocumentSettings holds source document configuration.
type DocumentSettings struct {
	// Path is the location of the source document.
	Path string

	// Extractor selects the page extraction adapter ("pdftotext" or "textfile").
	Extractor string
}

// ChunkerSettings holds semantic chunking configuration.
type ChunkerSettings struct {
	// SimilarityThreshold is the cosine similarity below which a chunk
	// boundary is placed between adjacent sentences.
	SimilarityThreshold float64

	// BatchSize bounds the number of sentences per embedding request.
	// Batching is a request-size optimisation only and never influences
	// chunk boundaries.
	BatchSize int
}

// RetrievalSettings holds retrieval configuration.
type RetrievalSettings struct {
	// TopK is the number of chunks to retrieve per question.
	TopK int
}

// FeedbackSettings holds feedback persistence configuration.
type FeedbackSettings struct {
	// Dir is the append-only directory feedback records are written to.
	Dir string
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	// Addr is the listen address for the HTTP API.
	Addr string
}

// CorpusCacheSettings holds corpus cache configuration.
type CorpusCacheSettings struct {
	// Enabled turns the sqlite corpus cache on.
	Enabled bool

	// Dir is the data directory the cache database lives in.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Document holds source document settings.
	Document DocumentSettings

	// Chunker holds semantic chunking settings.
	Chunker ChunkerSettings

	// Retrieval holds retrieval settings.
	Retrieval RetrievalSettings

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// LLM holds generation provider settings.
	LLM LLMSettings

	// Feedback holds feedback persistence settings.
	Feedback FeedbackSettings

	// Server holds HTTP server settings.
	Server ServerSettings

	// CorpusCache holds corpus cache settings.
	CorpusCache CorpusCacheSettings
}

// AllAIProviders returns every recognised provider, in menu order.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderGemini, AIProviderOllama, AIProviderOpenAI}
}

// DefaultEmbeddingModels maps each provider to its default embedding model.
func DefaultEmbeddingModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGemini: "models/embedding-001",
		AIProviderOllama: "nomic-embed-text",
		AIProviderOpenAI: "text-embedding-3-small",
	}
}

// DefaultLLMModels maps each provider to its default generation model.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderGemini: "models/gemini-1.5-pro-latest",
		AIProviderOllama: "llama3.1",
		AIProviderOpenAI: "gpt-4o-mini",
	}
}

// EmbeddingDimensions maps known embedding models to their vector sizes.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		"models/embedding-001":   768,
		"nomic-embed-text":       768,
		"all-minilm":             384,
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
		"text-embedding-ada-002": 1536,
	}
}

// DefaultAppSettings returns settings with sensible defaults.
// AI providers are left unconfigured; users must set them up explicitly.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Document: DocumentSettings{
			Extractor: "pdftotext",
		},
		Chunker: ChunkerSettings{
			SimilarityThreshold: 0.72,
			BatchSize:           20,
		},
		Retrieval: RetrievalSettings{
			TopK: 3,
		},
		Server: ServerSettings{
			Addr: ":8000",
		},
		CorpusCache: CorpusCacheSettings{
			Enabled: true,
		},
	}
}
