package contract

import (
	"context"

	"pdf-chatbot-be/internal/entity"
)

// ScoredDocumentChunk wraps DocumentChunk with its cosine similarity score
type ScoredDocumentChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentChunkRepository interface {
	// ReplaceForUser atomically swaps the user's whole index: deletes every
	// prior chunk for userId and inserts the new set in one transaction.
	ReplaceForUser(ctx context.Context, userId string, chunks []*entity.DocumentChunk) error
	CountByUserId(ctx context.Context, userId string) (int64, error)
	// SearchSimilar returns up to limit chunks for userId ordered by
	// descending cosine similarity to the query embedding.
	SearchSimilar(ctx context.Context, userId string, embedding []float32, limit int) ([]*ScoredDocumentChunk, error)
}
