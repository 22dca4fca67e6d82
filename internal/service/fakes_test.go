package service

import (
	"context"
	"sync"

	"pdf-chatbot-be/internal/entity"
	"pdf-chatbot-be/internal/repository/contract"
	"pdf-chatbot-be/pkg/embedding"
	"pdf-chatbot-be/pkg/llm"
)

// --- logger ---

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// --- pdf extractor ---

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// --- embedding provider ---

type fakeEmbedder struct {
	mu        sync.Mutex
	err       error
	texts     []string
	taskTypes []string
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.texts = append(f.texts, text)
	f.taskTypes = append(f.taskTypes, taskType)
	// Deterministic vector derived from the input length, order-checkable
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: []float32{float32(len(text)), float32(len(f.texts))},
		},
	}, nil
}

// --- chunk repository ---

type fakeChunkRepo struct {
	mu           sync.Mutex
	byUser       map[string][]*entity.DocumentChunk
	replaceErr   error
	searchErr    error
	searchResult []*contract.ScoredDocumentChunk
	replaceCalls int
}

func newFakeChunkRepo() *fakeChunkRepo {
	return &fakeChunkRepo{byUser: make(map[string][]*entity.DocumentChunk)}
}

func (f *fakeChunkRepo) ReplaceForUser(ctx context.Context, userId string, chunks []*entity.DocumentChunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.byUser[userId] = chunks
	return nil
}

func (f *fakeChunkRepo) CountByUserId(ctx context.Context, userId string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byUser[userId])), nil
}

func (f *fakeChunkRepo) SearchSimilar(ctx context.Context, userId string, emb []float32, limit int) ([]*contract.ScoredDocumentChunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.searchResult != nil {
		return f.searchResult, nil
	}
	// Return the user's first chunks up to limit, mimicking index scoping
	var scored []*contract.ScoredDocumentChunk
	for i, c := range f.byUser[userId] {
		if i >= limit {
			break
		}
		scored = append(scored, &contract.ScoredDocumentChunk{Chunk: c, Similarity: 1.0 - float64(i)*0.1})
	}
	return scored, nil
}

// --- llm provider ---

type fakeLLM struct {
	answer     string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		f.lastPrompt = history[len(history)-1].Content
	}
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}
