package bootstrap

import (
	"context"
	"log"

	"legal-assistant-be/internal/config"
	"legal-assistant-be/internal/controller"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/internal/service"
	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/extract"
	"legal-assistant-be/pkg/llm/factory"
	pktNats "legal-assistant-be/pkg/nats"
	"legal-assistant-be/pkg/rag"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CaseController     controller.ICaseController
	DocumentController controller.IDocumentController
	TaskController     controller.ITaskController
	ChatController     controller.IChatController
	TemplateController controller.ITemplateController

	// Background Services (Exposed for main.go to run)
	IndexerService service.IIndexerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// A missing credential is not fatal: the API still serves everything
	// except answer/draft generation, which degrades to a fixed message.
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		sysLogger.Warn("bootstrap", "LLM provider unavailable, generation disabled", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"error":    err.Error(),
		})
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// 5. RAG Pipeline
	chunkStore := service.NewChunkStore(uowFactory)
	indexer := rag.NewIndexer(
		extract.NewFileExtractor(),
		embeddingProvider,
		chunkStore,
		sysLogger,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
		cfg.Ai.EmbeddingDim,
	)
	retriever := rag.NewRetriever(embeddingProvider, chunkStore, cfg.Rag.TopK)
	generator := rag.NewGenerator(llmProvider)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.IndexDocTopic, pubSub)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.Keys.IndexDocTopic,
		uowFactory,
		indexer,
		natsPub,
		sysLogger,
	)

	caseService := service.NewCaseService(uowFactory, natsPub, sysLogger, cfg.App.UploadDir)
	documentService := service.NewDocumentService(
		uowFactory,
		publisherService,
		natsPub,
		sysLogger,
		cfg.App.UploadDir,
	)
	taskService := service.NewTaskService(uowFactory)
	chatService := service.NewChatService(uowFactory, retriever, generator, rdb, sysLogger)
	templateService := service.NewTemplateService(uowFactory, retriever, generator)

	// 7. Controllers
	return &Container{
		CaseController:     controller.NewCaseController(caseService),
		DocumentController: controller.NewDocumentController(documentService),
		TaskController:     controller.NewTaskController(taskService),
		ChatController:     controller.NewChatController(chatService),
		TemplateController: controller.NewTemplateController(templateService),
		IndexerService:     indexerService,
	}
}
