package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-chatbot-be/pkg/embedding"
	"pdf-chatbot-be/pkg/llm/ollama"
)

// Runs the embedding and generation providers against a local Ollama
// server. Set OLLAMA_BASE_URL (and optionally OLLAMA_MODEL) to enable.
func TestOllamaProviders(t *testing.T) {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: OLLAMA_BASE_URL not set")
	}

	embedModel := os.Getenv("OLLAMA_EMBED_MODEL")
	if embedModel == "" {
		embedModel = "nomic-embed-text"
	}

	t.Run("Embeddings Are Normalized", func(t *testing.T) {
		provider := embedding.NewOllamaProvider(baseURL, embedModel)

		res, err := provider.Generate("The warranty period is 24 months.", embedding.TaskTypeDocument)
		require.NoError(t, err)
		require.NotEmpty(t, res.Embedding.Values)

		var norm float64
		for _, v := range res.Embedding.Values {
			norm += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, norm, 1e-3)
	})

	t.Run("Generation Answers From Prompt", func(t *testing.T) {
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			model = "gemma:2b"
		}

		provider := ollama.NewOllamaProvider(baseURL, model)
		answer, err := provider.Generate(context.Background(),
			"Context:\nThe warranty period is 24 months.\n\nQuestion: How long is the warranty?\n\nAnswer:")
		require.NoError(t, err)
		assert.NotEmpty(t, answer)
	})
}
