// Package corpus provides the reference-corpus store and retrieval over it.
// Reference passages from published legal documents are chunked, embedded,
// and persisted in PostgreSQL; retrieval ranks chunks by cosine similarity
// against an embedded query.
package corpus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Chunk is one embedded reference passage
type Chunk struct {
	ID        uuid.UUID
	SourceURL string
	DocType   string
	Content   string
	Embedding []float32
}

// Store wraps a PostgreSQL connection pool holding the reference corpus
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the corpus database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the corpus table if it does not exist
func (s *Store) InitSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS corpus_chunks (
			id         UUID PRIMARY KEY,
			source_url TEXT NOT NULL,
			doc_type   TEXT NOT NULL,
			content    TEXT NOT NULL,
			embedding  REAL[] NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create corpus schema: %w", err)
	}
	return nil
}

// SaveChunks stores a batch of embedded chunks
func (s *Store) SaveChunks(ctx context.Context, chunks []Chunk) error {
	for _, chunk := range chunks {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO corpus_chunks (id, source_url, doc_type, content, embedding)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE SET content = $4, embedding = $5`,
			chunk.ID, chunk.SourceURL, chunk.DocType, chunk.Content, chunk.Embedding,
		)
		if err != nil {
			return fmt.Errorf("failed to save chunk %s: %w", chunk.ID, err)
		}
	}
	return nil
}

// AllChunks loads every chunk in the corpus
func (s *Store) AllChunks(ctx context.Context) ([]Chunk, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, source_url, doc_type, content, embedding FROM corpus_chunks`)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus chunks: %w", err)
	}
	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var chunk Chunk
		if err := rows.Scan(&chunk.ID, &chunk.SourceURL, &chunk.DocType, &chunk.Content, &chunk.Embedding); err != nil {
			return nil, fmt.Errorf("failed to scan corpus chunk: %w", err)
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus chunks: %w", err)
	}

	return chunks, nil
}

// Count returns the number of chunks in the corpus
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM corpus_chunks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count corpus chunks: %w", err)
	}
	return count, nil
}
