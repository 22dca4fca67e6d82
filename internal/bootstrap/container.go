package bootstrap

import (
	"log"

	"gorm.io/gorm"

	"pdf-chatbot-be/internal/config"
	"pdf-chatbot-be/internal/controller"
	"pdf-chatbot-be/internal/pkg/logger"
	"pdf-chatbot-be/internal/repository/implementation"
	"pdf-chatbot-be/internal/repository/memory"
	"pdf-chatbot-be/internal/service"
	"pdf-chatbot-be/pkg/embedding"
	"pdf-chatbot-be/pkg/embedding/jina"
	"pdf-chatbot-be/pkg/llm/factory"
	"pdf-chatbot-be/pkg/pdf"
)

type Container struct {
	// Controllers
	UploadController  controller.IUploadController
	ChatbotController controller.IChatbotController

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. AI Providers
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Repositories
	chunkRepo := implementation.NewDocumentChunkRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	ingestService := service.NewIngestService(
		pdf.NewExtractor(),
		embeddingProvider,
		chunkRepo,
		sessionRepo,
		sysLogger,
		cfg.Ai.ChunkSize,
		cfg.Ai.ChunkOverlap,
	)
	chatbotService := service.NewChatbotService(
		embeddingProvider,
		llmProvider,
		chunkRepo,
		sessionRepo,
		sysLogger,
		cfg.Ai.RetrievalTopK,
	)

	// 5. Controllers
	uploadController := controller.NewUploadController(ingestService, cfg.App.UploadDir)
	chatbotController := controller.NewChatbotController(chatbotService, cfg.App.FrontendIndex)

	return &Container{
		UploadController:  uploadController,
		ChatbotController: chatbotController,
		Logger:            sysLogger,
	}
}
