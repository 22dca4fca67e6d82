package service

import (
	"context"
	"errors"
	"time"

	"pdf-chatbot-be/internal/apperror"
	"pdf-chatbot-be/internal/entity"
	"pdf-chatbot-be/internal/pkg/logger"
	"pdf-chatbot-be/internal/repository/contract"
	"pdf-chatbot-be/internal/repository/memory"
	"pdf-chatbot-be/pkg/embedding"
	"pdf-chatbot-be/pkg/pdf"
	"pdf-chatbot-be/pkg/store"
	"pdf-chatbot-be/pkg/utils"
)

var errEmptyDocument = errors.New("document contains no extractable text")

// IIngestService turns an uploaded PDF into a per-user vector index and
// registers the user's session once everything succeeded.
type IIngestService interface {
	Ingest(ctx context.Context, userId string, documentPath string) (*store.Session, error)
}

type ingestService struct {
	extractor         pdf.Extractor
	embeddingProvider embedding.EmbeddingProvider
	chunkRepo         contract.DocumentChunkRepository
	sessionRepo       *memory.SessionRepository
	logger            logger.ILogger

	chunkSize    int
	chunkOverlap int
}

func NewIngestService(
	extractor pdf.Extractor,
	embeddingProvider embedding.EmbeddingProvider,
	chunkRepo contract.DocumentChunkRepository,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
	chunkSize int,
	chunkOverlap int,
) IIngestService {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 {
		chunkOverlap = 50
	}
	return &ingestService{
		extractor:         extractor,
		embeddingProvider: embeddingProvider,
		chunkRepo:         chunkRepo,
		sessionRepo:       sessionRepo,
		logger:            log,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (s *ingestService) Ingest(ctx context.Context, userId string, documentPath string) (*store.Session, error) {
	// 1. Extract page-ordered text
	text, err := s.extractor.ExtractText(documentPath)
	if err != nil {
		return nil, &apperror.ExtractionError{Path: documentPath, Err: err}
	}

	// 2. Chunk with overlap
	chunkTexts := utils.SplitTextByTokens(text, s.chunkSize, s.chunkOverlap)
	if len(chunkTexts) == 0 {
		return nil, &apperror.ExtractionError{Path: documentPath, Err: errEmptyDocument}
	}

	// 3. Embed each chunk, order matching chunk order
	chunks := make([]*entity.DocumentChunk, len(chunkTexts))
	for i, chunkText := range chunkTexts {
		res, err := s.embeddingProvider.Generate(chunkText, embedding.TaskTypeDocument)
		if err != nil {
			return nil, &apperror.EmbeddingError{Err: err}
		}
		chunks[i] = &entity.DocumentChunk{
			UserId:         userId,
			Document:       chunkText,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
			Metadata: map[string]interface{}{
				"token_count": utils.CountTokens(chunkText),
			},
		}
	}

	// 4. Atomically swap the user's index
	if err := s.chunkRepo.ReplaceForUser(ctx, userId, chunks); err != nil {
		return nil, err
	}

	// 5. Registry gets written only now, after everything succeeded
	session := &store.Session{
		UserID:       userId,
		DocumentPath: documentPath,
		ChunkCount:   len(chunks),
		IngestedAt:   time.Now(),
	}
	s.sessionRepo.Put(session)

	s.logger.Info("ingest", "document indexed", map[string]interface{}{
		"user_id": userId,
		"file":    documentPath,
		"chunks":  len(chunks),
	})

	return session, nil
}
