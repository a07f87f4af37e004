package feedback

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/murshid/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func testRecord(i int, helpful bool) domain.FeedbackRecord {
	return domain.FeedbackRecord{
		Query:     "سؤال رقم " + string(rune('0'+i)),
		Answer:    "إجابة رقم " + string(rune('0'+i)),
		Helpful:   helpful,
		Comment:   "ملاحظة",
		Timestamp: time.Date(2026, 3, 1, 10, 0, i, 0, time.UTC),
	}
}

func TestAppendAndAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Append(ctx, testRecord(i, i%2 == 0)))
	}

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Submission order preserved.
	assert.Equal(t, "سؤال رقم 1", records[0].Query)
	assert.Equal(t, "سؤال رقم 3", records[2].Query)
	assert.Equal(t, "ملاحظة", records[0].Comment)
	assert.True(t, records[0].Timestamp.Equal(testRecord(1, false).Timestamp))
}

func TestAppend_SameSecondDoesNotCollide(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := testRecord(1, true)
		rec.Timestamp = ts
		require.NoError(t, store.Append(ctx, rec))
	}

	records, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestAppend_PersistsRatingAsFeedbackKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, testRecord(1, true)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, true, raw["feedback"])
	assert.NotContains(t, raw, "helpful")
}

func TestNegatives_FiltersHelpful(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, testRecord(1, true)))
	require.NoError(t, store.Append(ctx, testRecord(2, false)))
	require.NoError(t, store.Append(ctx, testRecord(3, false)))

	negatives, err := store.Negatives(ctx)
	require.NoError(t, err)
	require.Len(t, negatives, 2)
	assert.Equal(t, "سؤال رقم 2", negatives[0].Query)
	assert.Equal(t, "سؤال رقم 3", negatives[1].Query)
}

func TestAll_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	records, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAll_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, testRecord(1, false)))
	require.NoError(t, os.WriteFile(dir+"/README.txt", []byte("not a record"), 0o600))

	records, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/feedback"

	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
