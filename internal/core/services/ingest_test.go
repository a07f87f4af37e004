package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

func writeTestDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kitab.txt")
	require.NoError(t, os.WriteFile(path, []byte("نص الوثيقه"), 0o600))
	return path
}

func testIngestChunks() []domain.Chunk {
	return []domain.Chunk{
		{ID: "a", Position: 0, Page: 0, Content: "الجزء الاول"},
		{ID: "b", Position: 1, Page: 0, Content: "الجزء الثاني"},
	}
}

func TestIngest_Success(t *testing.T) {
	path := writeTestDocument(t)
	s := NewIngestService(
		path,
		&mockExtractor{pages: []string{"صفحه اولي", "صفحه ثانيه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	corpus, err := s.Ingest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, path, corpus.Document.Path)
	assert.NotEmpty(t, corpus.Document.Fingerprint)
	assert.Len(t, corpus.Document.Pages, 2)
	assert.Len(t, corpus.Chunks, 2)
	require.Len(t, corpus.Vectors, 2)
	assert.Equal(t, []float32{1, 0}, corpus.Vectors[0])
}

func TestIngest_MissingDocument(t *testing.T) {
	s := NewIngestService(
		"/nonexistent/kitab.pdf",
		&mockExtractor{pages: []string{"صفحه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	_, err := s.Ingest(context.Background())
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestIngest_ExtractorFailureIsFatal(t *testing.T) {
	s := NewIngestService(
		writeTestDocument(t),
		&mockExtractor{err: errors.New("tool missing")},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	_, err := s.Ingest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool missing")
}

func TestIngest_NoExtractableText(t *testing.T) {
	s := NewIngestService(
		writeTestDocument(t),
		&mockExtractor{pages: []string{"", "   "}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	_, err := s.Ingest(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoExtractableText)
}

func TestIngest_EmptyPagesDropped(t *testing.T) {
	s := NewIngestService(
		writeTestDocument(t),
		&mockExtractor{pages: []string{"صفحه اولي", "", "صفحه ثالثه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	corpus, err := s.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"صفحه اولي", "صفحه ثالثه"}, corpus.Document.Pages)
}

func TestIngest_NoChunksIsFatal(t *testing.T) {
	s := NewIngestService(
		writeTestDocument(t),
		&mockExtractor{pages: []string{"صفحه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: nil},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	_, err := s.Ingest(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoChunks)
}

func TestIngest_EmbeddingFailureIsFatal(t *testing.T) {
	s := NewIngestService(
		writeTestDocument(t),
		&mockExtractor{pages: []string{"صفحه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{err: errors.New("provider down")},
		nil,
	)

	_, err := s.Ingest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embed corpus chunks")
}

func TestIngest_CacheHitSkipsEmbedding(t *testing.T) {
	path := writeTestDocument(t)
	cache := newMockCorpusStore()
	embedder := &mockEmbedder{vector: []float32{1, 0}}

	first := NewIngestService(
		path,
		&mockExtractor{pages: []string{"صفحه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		embedder,
		cache,
	)

	corpus1, err := first.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.saves)
	embedCalls := embedder.calls

	// Second ingest of the unchanged document hits the cache.
	second := NewIngestService(
		path,
		&mockExtractor{pages: []string{"صفحه"}},
		passthroughNormaliser{},
		&mockChunkPipeline{err: errors.New("must not chunk on cache hit")},
		embedder,
		cache,
	)

	corpus2, err := second.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, embedCalls, embedder.calls, "cache hit must not embed")
	assert.Equal(t, corpus1.Chunks, corpus2.Chunks)
	assert.Equal(t, corpus1.Vectors, corpus2.Vectors)
}

func TestIngest_NormaliserApplied(t *testing.T) {
	// A normaliser that maps everything to a marker proves pages pass
	// through it before chunking.
	s := NewIngestService(
		writeTestDocument(t),
		&mockExtractor{pages: []string{"أصل"}},
		markerNormaliser{},
		&mockChunkPipeline{chunks: testIngestChunks()},
		&mockEmbedder{vector: []float32{1, 0}},
		nil,
	)

	corpus, err := s.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"normalised"}, corpus.Document.Pages)
}

type markerNormaliser struct{}

func (markerNormaliser) Normalise(_ string) string { return "normalised" }
