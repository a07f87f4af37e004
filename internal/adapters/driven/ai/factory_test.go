package ai

import (
	"strings"
	"testing"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

func TestCreateEmbeddingService(t *testing.T) {
	tests := []struct {
		name     string
		settings *domain.EmbeddingSettings
		wantNil  bool
		wantErr  bool
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unconfigured settings returns nil",
			settings: &domain.EmbeddingSettings{},
			wantNil:  true,
		},
		{
			name: "gemini provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
				Model:    "models/embedding-001",
			},
		},
		{
			name: "ollama provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOllama,
				BaseURL:  "http://localhost:11434",
				Model:    "nomic-embed-text",
			},
		},
		{
			name: "openai provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
				Model:    "text-embedding-3-small",
			},
		},
		{
			name: "unknown provider returns nil (not configured)",
			settings: &domain.EmbeddingSettings{
				Provider: "unknown",
				APIKey:   "test-key",
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateEmbeddingService(tt.settings)

			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.wantNil && svc != nil {
				t.Error("expected nil service, got non-nil")
			}
			if !tt.wantNil && svc == nil {
				t.Error("expected non-nil service, got nil")
			}
			if svc != nil {
				svc.Close()
			}
		})
	}
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name     string
		settings *domain.LLMSettings
		wantNil  bool
		wantErr  bool
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unconfigured settings returns nil",
			settings: &domain.LLMSettings{},
			wantNil:  true,
		},
		{
			name: "gemini provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderGemini,
				APIKey:   "test-key",
				Model:    "models/gemini-1.5-pro-latest",
			},
		},
		{
			name: "ollama provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOllama,
				BaseURL:  "http://localhost:11434",
				Model:    "llama3.1",
			},
		},
		{
			name: "openai provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
				Model:    "gpt-4o-mini",
			},
		},
		{
			name: "gemini without api key returns nil (not configured)",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderGemini,
				Model:    "models/gemini-1.5-pro-latest",
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(tt.settings)

			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.wantNil && svc != nil {
				t.Error("expected nil service, got non-nil")
			}
			if !tt.wantNil && svc == nil {
				t.Error("expected non-nil service, got nil")
			}
			if svc != nil {
				svc.Close()
			}
		})
	}
}

func TestCreateEmbeddingService_ModelName(t *testing.T) {
	svc, err := CreateEmbeddingService(&domain.EmbeddingSettings{
		Provider: domain.AIProviderGemini,
		APIKey:   "test-key",
		Model:    "embedding-001", // bare name gets the models/ prefix
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer svc.Close()

	if got := svc.ModelName(); !strings.HasPrefix(got, "models/") {
		t.Errorf("expected models/ prefix, got %q", got)
	}
}

func TestValidateConfigs_UnconfiguredAreValid(t *testing.T) {
	if err := ValidateEmbeddingConfig(nil); err != nil {
		t.Errorf("nil embedding config should validate: %v", err)
	}
	if err := ValidateEmbeddingConfig(&domain.EmbeddingSettings{}); err != nil {
		t.Errorf("empty embedding config should validate: %v", err)
	}
	if err := ValidateLLMConfig(nil); err != nil {
		t.Errorf("nil llm config should validate: %v", err)
	}
	if err := ValidateLLMConfig(&domain.LLMSettings{}); err != nil {
		t.Errorf("empty llm config should validate: %v", err)
	}
}

func TestCreateAndValidate_UnconfiguredReturnsNil(t *testing.T) {
	svc, err := CreateAndValidateEmbeddingService(&domain.EmbeddingSettings{})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if svc != nil {
		t.Error("expected nil service for unconfigured settings")
		svc.Close()
	}

	llm, err := CreateAndValidateLLMService(&domain.LLMSettings{})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if llm != nil {
		t.Error("expected nil service for unconfigured settings")
		llm.Close()
	}
}
