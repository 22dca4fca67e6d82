package service

import (
	"context"

	"pdf-chatbot-be/internal/apperror"
	"pdf-chatbot-be/internal/constant"
	"pdf-chatbot-be/internal/dto"
	"pdf-chatbot-be/internal/pkg/logger"
	"pdf-chatbot-be/internal/repository/contract"
	"pdf-chatbot-be/internal/repository/memory"
	"pdf-chatbot-be/pkg/embedding"
	"pdf-chatbot-be/pkg/llm"
	"pdf-chatbot-be/pkg/rag/prompt"
	"pdf-chatbot-be/pkg/store"
)

// IChatbotService answers questions against the asking user's indexed
// document. No caching: every call re-embeds the question and re-queries
// the index.
type IChatbotService interface {
	Answer(ctx context.Context, userId string, question string) (*dto.ChatResponse, error)
}

type chatbotService struct {
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	chunkRepo         contract.DocumentChunkRepository
	sessionRepo       *memory.SessionRepository
	logger            logger.ILogger

	topK int
}

func NewChatbotService(
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	chunkRepo contract.DocumentChunkRepository,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
	topK int,
) IChatbotService {
	if topK <= 0 {
		topK = 3
	}
	return &chatbotService{
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		chunkRepo:         chunkRepo,
		sessionRepo:       sessionRepo,
		logger:            log,
		topK:              topK,
	}
}

func (s *chatbotService) Answer(ctx context.Context, userId string, question string) (*dto.ChatResponse, error) {
	// 1. A question needs an ingested document first
	if _, found := s.sessionRepo.Get(userId); !found {
		return nil, apperror.ErrNoSession
	}

	// 2. Embed the question in the same embedding space as the corpus
	res, err := s.embeddingProvider.Generate(question, embedding.TaskTypeQuery)
	if err != nil {
		return nil, &apperror.EmbeddingError{Err: err}
	}

	// 3. Top-k retrieval scoped to this user
	scored, err := s.chunkRepo.SearchSimilar(ctx, userId, res.Embedding.Values, s.topK)
	if err != nil {
		return nil, err
	}

	sources := make([]store.SourceChunk, len(scored))
	for i, sc := range scored {
		sources[i] = store.SourceChunk{
			Text:       sc.Chunk.Document,
			ChunkIndex: sc.Chunk.ChunkIndex,
			Score:      sc.Similarity,
			Metadata:   sc.Chunk.Metadata,
		}
	}

	// 4. Assemble the grounded prompt and generate. No retry on failure.
	grounded := prompt.NewBuilder(constant.ChatbotPolicyV1, sources, question).Build()

	answer, err := s.llmProvider.Generate(ctx, grounded)
	if err != nil {
		return nil, &apperror.GenerationError{Err: err}
	}

	s.logger.Info("chatbot", "question answered", map[string]interface{}{
		"user_id": userId,
		"chunks":  len(sources),
	})

	return &dto.ChatResponse{
		UserId:   userId,
		Question: question,
		Answer:   answer,
		Sources:  sources,
	}, nil
}
