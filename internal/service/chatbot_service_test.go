package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-chatbot-be/internal/apperror"
	"pdf-chatbot-be/internal/entity"
	"pdf-chatbot-be/internal/repository/contract"
	"pdf-chatbot-be/internal/repository/memory"
	"pdf-chatbot-be/pkg/embedding"
	"pdf-chatbot-be/pkg/store"
)

func registryWith(userIDs ...string) *memory.SessionRepository {
	repo := memory.NewSessionRepository()
	for _, id := range userIDs {
		repo.Put(&store.Session{UserID: id, DocumentPath: "pdf_files/" + id + ".pdf", ChunkCount: 3})
	}
	return repo
}

func scoredChunks(userId string, texts ...string) []*contract.ScoredDocumentChunk {
	scored := make([]*contract.ScoredDocumentChunk, len(texts))
	for i, text := range texts {
		scored[i] = &contract.ScoredDocumentChunk{
			Chunk:      &entity.DocumentChunk{UserId: userId, Document: text, ChunkIndex: i},
			Similarity: 1.0 - float64(i)*0.05,
		}
	}
	return scored
}

func TestAnswerNoSession(t *testing.T) {
	svc := NewChatbotService(&fakeEmbedder{}, &fakeLLM{}, newFakeChunkRepo(), registryWith(), noopLogger{}, 3)

	_, err := svc.Answer(context.Background(), "bob", "What is the warranty period?")

	require.ErrorIs(t, err, apperror.ErrNoSession)
}

func TestAnswerSuccess(t *testing.T) {
	embedder := &fakeEmbedder{}
	llmStub := &fakeLLM{answer: "The warranty period is 24 months."}
	chunkRepo := newFakeChunkRepo()
	chunkRepo.searchResult = scoredChunks("alice",
		"The warranty period is 24 months.",
		"Coverage excludes water damage.",
		"Claims require proof of purchase.",
	)

	svc := NewChatbotService(embedder, llmStub, chunkRepo, registryWith("alice"), noopLogger{}, 3)

	res, err := svc.Answer(context.Background(), "alice", "What is the warranty period?")
	require.NoError(t, err)

	assert.Equal(t, "alice", res.UserId)
	assert.Equal(t, "What is the warranty period?", res.Question)
	assert.Contains(t, res.Answer, "24 months")
	require.Len(t, res.Sources, 3)
	assert.Equal(t, "The warranty period is 24 months.", res.Sources[0].Text)

	// Question embedded with the query task type, same provider as ingest
	require.Len(t, embedder.taskTypes, 1)
	assert.Equal(t, embedding.TaskTypeQuery, embedder.taskTypes[0])

	// Grounded prompt carries context and the verbatim question
	assert.Contains(t, llmStub.lastPrompt, "Coverage excludes water damage.")
	assert.Contains(t, llmStub.lastPrompt, "Question: What is the warranty period?")
}

func TestAnswerFewerChunksThanK(t *testing.T) {
	chunkRepo := newFakeChunkRepo()
	chunkRepo.searchResult = scoredChunks("alice", "only one chunk")

	svc := NewChatbotService(&fakeEmbedder{}, &fakeLLM{answer: "ok"}, chunkRepo, registryWith("alice"), noopLogger{}, 3)

	res, err := svc.Answer(context.Background(), "alice", "q")
	require.NoError(t, err)
	assert.Len(t, res.Sources, 1)
}

func TestAnswerEmbeddingFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("model offline")}
	svc := NewChatbotService(embedder, &fakeLLM{}, newFakeChunkRepo(), registryWith("alice"), noopLogger{}, 3)

	_, err := svc.Answer(context.Background(), "alice", "q")

	var embeddingErr *apperror.EmbeddingError
	require.ErrorAs(t, err, &embeddingErr)
	assert.NotErrorIs(t, err, apperror.ErrNoSession)
}

func TestAnswerGenerationFailure(t *testing.T) {
	llmStub := &fakeLLM{err: errors.New("rate limited")}
	chunkRepo := newFakeChunkRepo()
	chunkRepo.searchResult = scoredChunks("alice", "some context")

	svc := NewChatbotService(&fakeEmbedder{}, llmStub, chunkRepo, registryWith("alice"), noopLogger{}, 3)

	_, err := svc.Answer(context.Background(), "alice", "q")

	var generationErr *apperror.GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestAnswerScopedToRequestingUser(t *testing.T) {
	chunkRepo := newFakeChunkRepo()
	require.NoError(t, chunkRepo.ReplaceForUser(context.Background(), "alice", []*entity.DocumentChunk{
		{UserId: "alice", Document: "alice's warranty is 24 months", ChunkIndex: 0, EmbeddingValue: []float32{1, 0}},
	}))
	require.NoError(t, chunkRepo.ReplaceForUser(context.Background(), "bob", []*entity.DocumentChunk{
		{UserId: "bob", Document: "bob's lease ends in June", ChunkIndex: 0, EmbeddingValue: []float32{0, 1}},
	}))

	llmStub := &fakeLLM{answer: "ok"}
	svc := NewChatbotService(&fakeEmbedder{}, llmStub, chunkRepo, registryWith("alice", "bob"), noopLogger{}, 3)

	res, err := svc.Answer(context.Background(), "alice", "when does the lease end?")
	require.NoError(t, err)

	for _, src := range res.Sources {
		assert.NotContains(t, src.Text, "bob's", "retrieval must never cross users")
	}
	assert.NotContains(t, llmStub.lastPrompt, "bob's lease")
}
