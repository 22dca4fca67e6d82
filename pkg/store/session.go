package store

import "time"

// SourceChunk is a retrieved span of document text returned alongside an
// answer for traceability.
type SourceChunk struct {
	Text       string                 `json:"text"`
	ChunkIndex int                    `json:"chunk_index"`
	Score      float64                `json:"score"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Session is one user's ingested-document state. A session only exists
// after a fully successful ingestion; re-ingesting replaces it whole.
type Session struct {
	UserID       string    `json:"user_id"`
	DocumentPath string    `json:"document_path"`
	ChunkCount   int       `json:"chunk_count"`
	IngestedAt   time.Time `json:"ingested_at"`
}
