// Package semantic provides an embedding-similarity chunking processor.
//
// Each page is split into sentences, and a chunk boundary is placed
// wherever the cosine similarity between consecutive sentence embeddings
// drops below the configured threshold. Sentences are embedded in
// fixed-size batches purely to bound request sizes; batching never
// influences where boundaries fall.
package semantic

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/murshid/internal/core/domain"
	"github.com/custodia-labs/murshid/internal/core/ports/driven"
	"github.com/custodia-labs/murshid/internal/logger"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// DefaultSimilarityThreshold is the cosine similarity below which a chunk
// boundary is placed between adjacent sentences.
const DefaultSimilarityThreshold = 0.72

// DefaultBatchSize is the default number of sentences per embedding request.
const DefaultBatchSize = 20

// Processor splits document pages into semantically coherent chunks.
// It implements the PostProcessor interface.
type Processor struct {
	embedder  driven.EmbeddingService
	threshold float64
	batchSize int
}

// Option configures the semantic processor.
type Option func(*Processor)

// WithSimilarityThreshold sets the boundary threshold.
func WithSimilarityThreshold(threshold float64) Option {
	return func(p *Processor) {
		p.threshold = threshold
	}
}

// WithBatchSize sets the number of sentences per embedding request.
func WithBatchSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.batchSize = size
		}
	}
}

// New creates a new semantic chunking processor with the given options.
func New(embedder driven.EmbeddingService, opts ...Option) *Processor {
	p := &Processor{
		embedder:  embedder,
		threshold: DefaultSimilarityThreshold,
		batchSize: DefaultBatchSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "semantic"
}

// Process chunks every page of the document independently and returns the
// concatenation of all pages' chunks in corpus order. Input chunks are
// ignored; this processor creates chunks from page content.
func (p *Processor) Process(ctx context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	var chunks []domain.Chunk

	for page, text := range doc.Pages {
		chunks = p.chunkPage(ctx, chunks, page, text)
	}

	logger.Info("Semantic chunking: %d pages -> %d chunks", len(doc.Pages), len(chunks))
	return chunks, nil
}

// chunkPage appends the chunks of one page to the running chunk list.
// The "previous embedding" continuity spans batch boundaries within the
// page and resets only at the page boundary.
func (p *Processor) chunkPage(ctx context.Context, chunks []domain.Chunk, page int, text string) []domain.Chunk {
	sentences := SplitSentences(text)

	var buffer []string
	var prev []float32

	for start := 0; start < len(sentences); start += p.batchSize {
		end := start + p.batchSize
		if end > len(sentences) {
			end = len(sentences)
		}

		batch := make([]string, 0, end-start)
		for _, s := range sentences[start:end] {
			if s = strings.TrimSpace(s); s != "" {
				batch = append(batch, s)
			}
		}
		if len(batch) == 0 {
			continue
		}

		embeddings, err := p.embedder.EmbedBatch(ctx, batch)
		if err != nil || len(embeddings) != len(batch) {
			// A failed batch is a hard boundary: its sentences are dropped
			// from the chunk stream, the buffered chunk is flushed, and the
			// similarity continuity resets. The resulting gap is accepted
			// data loss, never silently bridged.
			logger.Warn("Embedding batch of %d sentences failed on page %d, dropping batch: %v",
				len(batch), page, err)
			chunks = p.flush(chunks, &buffer, page)
			prev = nil
			continue
		}

		for i, sentence := range batch {
			embedding := embeddings[i]
			if prev != nil && cosineSimilarity(prev, embedding) < p.threshold {
				chunks = p.flush(chunks, &buffer, page)
			}
			buffer = append(buffer, sentence)
			prev = embedding
		}
	}

	// Page boundary: flush the remainder; continuity does not cross pages.
	return p.flush(chunks, &buffer, page)
}

// flush joins the buffered sentences into a chunk, appends it unless it
// trims to empty, and resets the buffer.
func (p *Processor) flush(chunks []domain.Chunk, buffer *[]string, page int) []domain.Chunk {
	if len(*buffer) == 0 {
		return chunks
	}

	content := strings.TrimSpace(strings.Join(*buffer, " "))
	*buffer = (*buffer)[:0]

	if content == "" {
		return chunks
	}

	return append(chunks, domain.Chunk{
		ID:       uuid.New().String(),
		Position: len(chunks),
		Page:     page,
		Content:  content,
	})
}

// sentenceTerminators are the sentence-terminal punctuation marks:
// period, exclamation mark, and the Arabic question mark.
const sentenceTerminators = ".!؟"

// SplitSentences splits text into sentences on terminal punctuation
// followed by whitespace. The terminator stays attached to its sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if strings.ContainsRune(sentenceTerminators, r) {
			// Lookahead: only a following whitespace (or end of text)
			// terminates the sentence, so "3.5" stays intact.
			if i+1 >= len(runes) || isSpace(runes[i+1]) {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 when either vector has zero norm.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
