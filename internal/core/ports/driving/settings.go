package driving

import "github.com/custodia-labs/murshid/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDocument updates the source document path and extractor.
	SetDocument(path, extractor string) error

	// SetEmbeddingProvider configures the embedding provider.
	SetEmbeddingProvider(provider domain.AIProvider, model, apiKey string) error

	// SetLLMProvider configures the generation provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// Validate checks if current settings can serve queries.
	Validate() error

	// ValidateEmbeddingConfig validates the embedding provider by pinging it.
	ValidateEmbeddingConfig() error

	// ValidateLLMConfig validates the generation provider by pinging it.
	ValidateLLMConfig() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
