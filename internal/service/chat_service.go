package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"legal-assistant-be/internal/constant"
	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/rag"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const chatCacheTTL = time.Hour

type IChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, caseId uuid.UUID) ([]*dto.ChatHistoryItem, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	retriever  *rag.Retriever
	generator  *rag.Generator
	cache      *redis.Client
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *rag.Retriever,
	generator *rag.Generator,
	cache *redis.Client,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		retriever:  retriever,
		generator:  generator,
		cache:      cache,
		log:        log,
	}
}

// Ask answers a question about one case using only that case's indexed
// documents. Cases with nothing indexed get a fixed message without any
// model call; a missing LLM credential degrades the same way.
func (s *chatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: req.CaseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	cacheKey := chatCacheKey(req.CaseId, req.Message)
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result, err := s.retriever.Retrieve(ctx, req.CaseId, req.Message)
	if err != nil {
		return nil, err
	}

	if len(result.Chunks) == 0 {
		res := &dto.ChatResponse{
			Response: constant.NoDocumentsMessage,
			Sources:  []string{},
		}
		s.persist(ctx, req.CaseId, req.Message, res)
		return res, nil
	}

	answer, err := s.generator.Answer(ctx, req.Message, result.Chunks)
	if err != nil {
		if errors.Is(err, rag.ErrNotConfigured) {
			return &dto.ChatResponse{
				Response: constant.LLMNotConfiguredMessage,
				Sources:  []string{},
			}, nil
		}
		return nil, err
	}

	res := &dto.ChatResponse{
		Response: answer,
		Sources:  result.Sources,
	}

	s.persist(ctx, req.CaseId, req.Message, res)
	s.cacheSet(ctx, cacheKey, res)

	return res, nil
}

func (s *chatService) History(ctx context.Context, caseId uuid.UUID) ([]*dto.ChatHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByCaseID{CaseID: caseId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatHistoryItem, len(messages))
	for i, m := range messages {
		sources := []string{}
		if m.Sources != "" {
			if err := json.Unmarshal([]byte(m.Sources), &sources); err != nil {
				s.log.Warn("chat.service", "failed to decode stored sources", map[string]interface{}{
					"chat_message_id": m.Id.String(),
					"error":           err.Error(),
				})
			}
		}
		res[i] = &dto.ChatHistoryItem{
			Id:        m.Id,
			Message:   m.Message,
			Response:  m.Response,
			Sources:   sources,
			CreatedAt: m.CreatedAt,
		}
	}
	return res, nil
}

// persist stores the exchange; history is auxiliary so failures only log.
func (s *chatService) persist(ctx context.Context, caseId uuid.UUID, message string, res *dto.ChatResponse) {
	sourcesJson, err := json.Marshal(res.Sources)
	if err != nil {
		sourcesJson = []byte("[]")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	record := entity.ChatMessage{
		Id:        uuid.New(),
		CaseId:    caseId,
		Message:   message,
		Response:  res.Response,
		Sources:   string(sourcesJson),
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &record); err != nil {
		s.log.Warn("chat.service", "failed to persist chat message", map[string]interface{}{
			"case_id": caseId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *chatService) cacheGet(ctx context.Context, key string) *dto.ChatResponse {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("chat.service", "cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil
	}
	var res dto.ChatResponse
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil
	}
	return &res
}

func (s *chatService) cacheSet(ctx context.Context, key string, res *dto.ChatResponse) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, chatCacheTTL).Err(); err != nil {
		s.log.Warn("chat.service", "cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func chatCacheKey(caseId uuid.UUID, message string) string {
	sum := sha256.Sum256([]byte(message))
	return fmt.Sprintf("chat:%s:%s", caseId, hex.EncodeToString(sum[:16]))
}
