package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/core/ports/driving"
	"github.com/custodia-labs/murshid/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the retrievable corpus from the source document:
// extract pages, normalise them, chunk, embed, and hand the result to the
// caller for indexing. Every failure here is fatal; the service must not
// answer questions over a partially built corpus.
type IngestService struct {
	path       string
	extractor  driven.PageExtractor
	normaliser driven.TextNormaliser
	pipeline   driven.PostProcessorPipeline
	embedder   driven.EmbeddingService
	cache      driven.CorpusStore
}

// NewIngestService creates an ingest service for the document at path.
// cache may be nil to disable corpus caching.
func NewIngestService(
	path string,
	extractor driven.PageExtractor,
	normaliser driven.TextNormaliser,
	pipeline driven.PostProcessorPipeline,
	embedder driven.EmbeddingService,
	cache driven.CorpusStore,
) *IngestService {
	return &IngestService{
		path:       path,
		extractor:  extractor,
		normaliser: normaliser,
		pipeline:   pipeline,
		embedder:   embedder,
		cache:      cache,
	}
}

// Ingest runs the full ingestion sequence and returns the corpus with
// its chunk embeddings. A fingerprint match against the corpus cache
// skips chunking and embedding entirely.
func (s *IngestService) Ingest(ctx context.Context) (*domain.Corpus, error) {
	logger.Section("Ingestion")
	logger.Info("Source document: %s", s.path)

	fingerprint, err := fingerprintFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, s.path)
	}

	pages, err := s.extractor.Pages(ctx, s.path)
	if err != nil {
		return nil, fmt.Errorf("extract pages with %s: %w", s.extractor.Name(), err)
	}

	normalised := make([]string, 0, len(pages))
	for _, page := range pages {
		if text := s.normaliser.Normalise(page); strings.TrimSpace(text) != "" {
			normalised = append(normalised, text)
		}
	}
	if len(normalised) == 0 {
		return nil, fmt.Errorf("%s: %w", s.path, domain.ErrNoExtractableText)
	}
	logger.Info("Extracted %d pages (%d with text)", len(pages), len(normalised))

	doc := domain.Document{
		Path:        s.path,
		Fingerprint: fingerprint,
		Pages:       normalised,
	}

	if corpus := s.loadCached(ctx, doc); corpus != nil {
		return corpus, nil
	}

	chunks, err := s.pipeline.Process(ctx, &doc)
	if err != nil {
		return nil, fmt.Errorf("chunk document: %w", err)
	}
	if len(chunks) == 0 {
		return nil, domain.ErrNoChunks
	}

	vectors, err := s.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	corpus := &domain.Corpus{
		Document: doc,
		Chunks:   chunks,
		Vectors:  vectors,
	}

	s.saveCached(ctx, corpus)

	logger.Info("Ingestion complete: %d chunks", len(chunks))
	return corpus, nil
}

// embedChunks embeds every chunk's content. Embedding failures during
// ingestion are fatal, unlike during chunking or retrieval.
func (s *IngestService) embedChunks(ctx context.Context, chunks []domain.Chunk) ([][]float32, error) {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed corpus chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embed corpus chunks: got %d vectors for %d chunks", len(vectors), len(chunks))
	}

	return vectors, nil
}

// loadCached returns the cached corpus for the document fingerprint, or
// nil on a miss. Cache errors degrade to a miss.
func (s *IngestService) loadCached(ctx context.Context, doc domain.Document) *domain.Corpus {
	if s.cache == nil {
		return nil
	}

	chunks, vectors, err := s.cache.Load(ctx, doc.Fingerprint)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Corpus cache read failed: %v", err)
		}
		return nil
	}

	logger.Info("Corpus cache hit: %d chunks, skipping embedding", len(chunks))
	return &domain.Corpus{
		Document: doc,
		Chunks:   chunks,
		Vectors:  vectors,
	}
}

// saveCached persists the corpus for future runs. Failures are logged
// and ignored; the cache is an optimisation, not a dependency.
func (s *IngestService) saveCached(ctx context.Context, corpus *domain.Corpus) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Save(ctx, corpus.Document.Fingerprint, corpus.Chunks, corpus.Vectors); err != nil {
		logger.Warn("Corpus cache write failed: %v", err)
	}
}

// fingerprintFile hashes the raw document bytes. The fingerprint keys
// the corpus cache; any byte change invalidates it.
func fingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
