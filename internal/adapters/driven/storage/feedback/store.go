// Package feedback provides a file-based implementation of the feedback
// store. Each record is one JSON file in the feedback directory; the
// directory as a whole is the append-only log.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.FeedbackStore = (*Store)(nil)

// Store persists feedback records as individual JSON files.
// Filenames sort chronologically, so reading the directory in name
// order replays the records in submission order.
type Store struct {
	mu  sync.Mutex
	dir string
}

// record is the on-disk representation of a feedback record. The
// rating is persisted under the "feedback" key, matching the HTTP API
// request field.
type record struct {
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Helpful   bool      `json:"feedback"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewStore creates a feedback store rooted at dir.
// If dir is empty, defaults to ~/.murshid/feedback.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".murshid", "feedback")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &Store{dir: dir}, nil
}

// Append writes the record to a new file. The filename starts with the
// submission timestamp so that lexical order is chronological; a short
// random suffix keeps records submitted in the same second apart.
func (s *Store) Append(_ context.Context, rec domain.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record{
		Query:     rec.Query,
		Answer:    rec.Answer,
		Helpful:   rec.Helpful,
		Comment:   rec.Comment,
		Timestamp: rec.Timestamp,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feedback record: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json",
		rec.Timestamp.UTC().Format("20060102T150405"),
		uuid.NewString()[:8])

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write feedback record: %w", err)
	}
	return nil
}

// All returns every record in submission order.
func (s *Store) All(_ context.Context) ([]domain.FeedbackRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read feedback dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	records := make([]domain.FeedbackRecord, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read feedback record %s: %w", name, err)
		}

		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode feedback record %s: %w", name, err)
		}

		records = append(records, domain.FeedbackRecord{
			Query:     rec.Query,
			Answer:    rec.Answer,
			Helpful:   rec.Helpful,
			Comment:   rec.Comment,
			Timestamp: rec.Timestamp,
		})
	}

	return records, nil
}

// Negatives returns the unsatisfactory records in submission order.
func (s *Store) Negatives(ctx context.Context) ([]domain.FeedbackRecord, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	negatives := make([]domain.FeedbackRecord, 0, len(all))
	for _, rec := range all {
		if rec.IsNegative() {
			negatives = append(negatives, rec)
		}
	}
	return negatives, nil
}
