package driven

import "context"

// LLMService produces answer text from a composed prompt.
//
// Calls are single-attempt; a failure is reported to the caller, who
// converts it into a user-visible diagnostic instead of propagating.
//
// Implementations may include:
//   - Gemini (Google Generative Language models)
//   - OpenAI (GPT models)
//   - Ollama (local models)
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
