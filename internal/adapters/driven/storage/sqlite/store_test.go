package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, dir
}

func testCorpus() ([]domain.Chunk, [][]float32) {
	chunks := []domain.Chunk{
		{ID: "chunk-0", Position: 0, Page: 0, Content: "المادة الأولى من النظام."},
		{ID: "chunk-1", Position: 1, Page: 0, Content: "المادة الثانية من النظام."},
		{ID: "chunk-2", Position: 2, Page: 1, Content: "المادة الثالثة من النظام."},
	}
	vectors := [][]float32{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9},
	}
	return chunks, vectors
}

func TestSaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	chunks, vectors := testCorpus()

	require.NoError(t, store.Save(ctx, "fp-1", chunks, vectors))

	gotChunks, gotVectors, err := store.Load(ctx, "fp-1")
	require.NoError(t, err)
	require.Len(t, gotChunks, 3)
	require.Len(t, gotVectors, 3)

	assert.Equal(t, chunks, gotChunks)
	assert.Equal(t, vectors, gotVectors)
}

func TestLoad_UnknownFingerprint(t *testing.T) {
	store, _ := newTestStore(t)

	chunks, vectors, err := store.Load(context.Background(), "no-such-fingerprint")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, chunks)
	assert.Nil(t, vectors)
}

func TestSave_ReplacesPreviousCorpus(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	chunks, vectors := testCorpus()

	require.NoError(t, store.Save(ctx, "fp-old", chunks, vectors))
	require.NoError(t, store.Save(ctx, "fp-new", chunks[:1], vectors[:1]))

	// The old fingerprint is gone.
	_, _, err := store.Load(ctx, "fp-old")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	gotChunks, _, err := store.Load(ctx, "fp-new")
	require.NoError(t, err)
	assert.Len(t, gotChunks, 1)
}

func TestSave_CountMismatch(t *testing.T) {
	store, _ := newTestStore(t)
	chunks, vectors := testCorpus()

	err := store.Save(context.Background(), "fp-1", chunks, vectors[:2])
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	chunks, vectors := testCorpus()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "fp-1", chunks, vectors))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	gotChunks, gotVectors, err := reopened.Load(ctx, "fp-1")
	require.NoError(t, err)
	assert.Equal(t, chunks, gotChunks)
	assert.Equal(t, vectors, gotVectors)
}

func TestVectorRoundTrip(t *testing.T) {
	original := []float32{0.0, -1.5, 3.14159, 1e-7}
	assert.Equal(t, original, bytesToFloat32Slice(float32SliceToBytes(original)))
}
