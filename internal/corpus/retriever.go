// Package corpus provides the reference-corpus store and retrieval over it.
package corpus

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/mfeldman/termsmith/internal/synth"
)

// Embedder turns text into an embedding vector. llm.Client satisfies this.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// ChunkSource supplies candidate chunks for ranking. *Store satisfies this.
type ChunkSource interface {
	AllChunks(ctx context.Context) ([]Chunk, error)
}

// Retriever ranks corpus chunks by cosine similarity against an embedded
// query. It implements the pipeline's retrieval capability.
type Retriever struct {
	embedder Embedder
	source   ChunkSource
}

// NewRetriever creates a retriever over an embedder and a chunk source
func NewRetriever(embedder Embedder, source ChunkSource) *Retriever {
	return &Retriever{embedder: embedder, source: source}
}

// Search returns the top-k most similar passages for a query. Failures
// propagate to the caller; the pipeline has no local fallback.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]synth.Passage, error) {
	queryVec, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	chunks, err := r.source.AllChunks(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		chunk Chunk
		score float64
	}
	ranked := make([]scored, 0, len(chunks))
	for _, chunk := range chunks {
		ranked = append(ranked, scored{chunk: chunk, score: CosineSimilarity(queryVec, chunk.Embedding)})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	passages := make([]synth.Passage, 0, k)
	for _, entry := range ranked[:k] {
		passages = append(passages, synth.Passage{
			Content:   entry.chunk.Content,
			SourceURL: entry.chunk.SourceURL,
			Score:     entry.score,
		})
	}
	return passages, nil
}

// CosineSimilarity computes the cosine similarity of two vectors. Mismatched
// or zero-magnitude vectors score zero rather than erroring.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
