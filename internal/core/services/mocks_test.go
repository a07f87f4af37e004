package services

import (
	"context"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
)

// mockEmbedder returns a fixed vector or error for every call.
type mockEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.vector, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = m.vector
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int              { return len(m.vector) }
func (m *mockEmbedder) ModelName() string            { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// mockSearcher returns canned hits.
type mockSearcher struct {
	hits []driven.VectorHit
	err  error
}

func (m *mockSearcher) Search(_ context.Context, _ []float32, k int) ([]driven.VectorHit, error) {
	if m.err != nil {
		return nil, m.err
	}
	if k > len(m.hits) {
		k = len(m.hits)
	}
	return m.hits[:k], nil
}

func (m *mockSearcher) Dimensions() int { return 2 }
func (m *mockSearcher) Len() int        { return len(m.hits) }

// mockLLM returns a fixed answer or error.
type mockLLM struct {
	answer  string
	err     error
	prompts []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockLLM) ModelName() string            { return "mock-llm" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockFeedbackStore holds records in memory.
type mockFeedbackStore struct {
	records []domain.FeedbackRecord
	err     error
}

func (m *mockFeedbackStore) Append(_ context.Context, record domain.FeedbackRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockFeedbackStore) All(_ context.Context) ([]domain.FeedbackRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockFeedbackStore) Negatives(_ context.Context) ([]domain.FeedbackRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var negatives []domain.FeedbackRecord
	for _, r := range m.records {
		if r.IsNegative() {
			negatives = append(negatives, r)
		}
	}
	return negatives, nil
}

// mockExtractor returns canned pages.
type mockExtractor struct {
	pages []string
	err   error
}

func (m *mockExtractor) Name() string { return "mock" }

func (m *mockExtractor) Pages(_ context.Context, _ string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

// mockChunkPipeline returns canned chunks.
type mockChunkPipeline struct {
	chunks []domain.Chunk
	err    error
}

func (m *mockChunkPipeline) Process(_ context.Context, _ *domain.Document) ([]domain.Chunk, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.chunks, nil
}

// mockCorpusStore is an in-memory corpus cache.
type mockCorpusStore struct {
	chunks  map[string][]domain.Chunk
	vectors map[string][][]float32
	saves   int
}

func newMockCorpusStore() *mockCorpusStore {
	return &mockCorpusStore{
		chunks:  make(map[string][]domain.Chunk),
		vectors: make(map[string][][]float32),
	}
}

func (m *mockCorpusStore) Save(_ context.Context, fingerprint string, chunks []domain.Chunk, vectors [][]float32) error {
	m.saves++
	m.chunks[fingerprint] = chunks
	m.vectors[fingerprint] = vectors
	return nil
}

func (m *mockCorpusStore) Load(_ context.Context, fingerprint string) ([]domain.Chunk, [][]float32, error) {
	chunks, ok := m.chunks[fingerprint]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	return chunks, m.vectors[fingerprint], nil
}

func (m *mockCorpusStore) Close() error { return nil }

// passthroughNormaliser leaves text unchanged.
type passthroughNormaliser struct{}

func (passthroughNormaliser) Normalise(text string) string { return text }
