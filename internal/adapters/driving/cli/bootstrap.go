package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/murshid/internal/adapters/driven/ai"
	"github.com/custodia-labs/murshid/internal/adapters/driven/config/file"
	"github.com/custodia-labs/murshid/internal/adapters/driven/extractor/pdftotext"
	"github.com/custodia-labs/murshid/internal/adapters/driven/extractor/textfile"
	feedbackstorage "github.com/custodia-labs/murshid/internal/adapters/driven/storage/feedback"
	"github.com/custodia-labs/murshid/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/murshid/internal/adapters/driven/vector/flat"
	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/core/services"
	"github.com/custodia-labs/murshid/internal/logger"
	"github.com/custodia-labs/murshid/internal/normalisers/arabic"
	"github.com/custodia-labs/murshid/internal/postprocessors"
)

// initSettings wires the settings service from the TOML config store.
func initSettings() error {
	if settingsService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService = services.NewSettingsService(store, ai.NewConfigValidator())
	return nil
}

// bootstrap ingests the document and wires the full answer pipeline.
// Fatal on any ingestion error: the service must not answer questions
// from a partially built corpus.
func bootstrap(ctx context.Context) error {
	if queryService != nil {
		return nil
	}

	if err := initSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err := settingsService.Validate(); err != nil {
		return fmt.Errorf("%w\nRun 'murshid settings wizard' to complete configuration", err)
	}

	embedder, err := ai.CreateAndValidateEmbeddingService(&settings.Embedding)
	if err != nil {
		return err
	}
	if embedder == nil {
		return domain.ErrEmbeddingUnavailable
	}

	// A missing LLM degrades answers to a diagnostic string per question
	// rather than blocking startup.
	llm, err := ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("LLM unavailable, answers will be degraded: %v", err)
		llm = nil
	}

	extractor, err := selectExtractor(settings.Document.Extractor)
	if err != nil {
		return err
	}

	pipeline := postprocessors.DefaultPipeline(embedder, settings.Chunker)

	var cache driven.CorpusStore
	if settings.CorpusCache.Enabled {
		store, err := sqlite.NewStore(settings.CorpusCache.Dir)
		if err != nil {
			logger.Warn("corpus cache unavailable, ingesting from scratch: %v", err)
		} else {
			cache = store
		}
	}

	ingest := services.NewIngestService(
		settings.Document.Path,
		extractor,
		arabic.New(),
		pipeline,
		embedder,
		cache,
	)

	corpus, err := ingest.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("ingest document: %w", err)
	}

	index, err := flat.Build(corpus.Vectors)
	if err != nil {
		return fmt.Errorf("build vector index: %w", err)
	}

	feedbackStore, err := feedbackstorage.NewStore(settings.Feedback.Dir)
	if err != nil {
		return fmt.Errorf("open feedback store: %w", err)
	}

	retriever := services.NewRetriever(embedder, index, corpus.Chunks, settings.Retrieval.TopK)
	composer := services.NewPromptComposer(feedbackStore, llm)

	status := domain.ServiceStatus{
		Ready:          true,
		DocumentPath:   corpus.Document.Path,
		ChunkCount:     len(corpus.Chunks),
		EmbeddingModel: settings.Embedding.Model,
		LLMModel:       settings.LLM.Model,
	}

	qs := services.NewQueryService(retriever, composer, feedbackStore, status)
	queryService = qs
	statusService = qs
	feedbackService = services.NewFeedbackService(feedbackStore)

	return nil
}

// initFeedback wires just the feedback service, without ingesting.
func initFeedback() error {
	if feedbackService != nil {
		return nil
	}

	if err := initSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := feedbackstorage.NewStore(settings.Feedback.Dir)
	if err != nil {
		return fmt.Errorf("open feedback store: %w", err)
	}

	feedbackService = services.NewFeedbackService(store)
	return nil
}

// selectExtractor picks the page extractor adapter by name.
func selectExtractor(name string) (driven.PageExtractor, error) {
	switch name {
	case "textfile":
		return textfile.New(), nil
	case "", "pdftotext":
		if err := pdftotext.CheckAvailable(); err != nil {
			return nil, errors.New(pdftotext.InstallInstructions())
		}
		return pdftotext.New(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (expected pdftotext or textfile)", name)
	}
}
