package service

import (
	"context"
	"testing"
	"time"

	"legal-assistant-be/internal/constant"
	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/pkg/rag"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(uow *fakeUow, provider *stubLLM) IChatService {
	factory := &fakeUowFactory{uow: uow}
	store := NewChunkStore(factory)
	retriever := rag.NewRetriever(stubEmbedder{}, store, 5)

	var generator *rag.Generator
	if provider != nil {
		generator = rag.NewGenerator(provider)
	} else {
		generator = rag.NewGenerator(nil)
	}

	return NewChatService(factory, retriever, generator, nil, nopLogger{})
}

func TestChatService_Ask(t *testing.T) {
	caseId := uuid.New()
	uow := newFakeUow()
	uow.cases.cases = []*entity.Case{{Id: caseId, Title: "Kira Davası", CreatedAt: time.Now()}}
	uow.chunks.chunks = chunkEntities(caseId, uuid.New(), "sozlesme.pdf", 3)

	provider := &stubLLM{answer: "Kira bedeli 10.000 TL'dir."}
	svc := newChatService(uow, provider)

	res, err := svc.Ask(context.Background(), &dto.ChatRequest{CaseId: caseId, Message: "Kira bedeli ne kadar?"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Kira bedeli 10.000 TL'dir.", res.Response)
	assert.Equal(t, []string{"sozlesme.pdf"}, res.Sources)

	// Exchange is persisted with its sources
	require.Len(t, uow.chats.messages, 1)
	assert.Equal(t, "Kira bedeli ne kadar?", uow.chats.messages[0].Message)
	assert.JSONEq(t, `["sozlesme.pdf"]`, uow.chats.messages[0].Sources)
}

func TestChatService_AskCaseNotFound(t *testing.T) {
	svc := newChatService(newFakeUow(), &stubLLM{answer: "x"})

	res, err := svc.Ask(context.Background(), &dto.ChatRequest{CaseId: uuid.New(), Message: "soru"})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestChatService_AskNoDocuments(t *testing.T) {
	caseId := uuid.New()
	uow := newFakeUow()
	uow.cases.cases = []*entity.Case{{Id: caseId, Title: "Boş Dava", CreatedAt: time.Now()}}

	provider := &stubLLM{answer: "cevap"}
	svc := newChatService(uow, provider)

	res, err := svc.Ask(context.Background(), &dto.ChatRequest{CaseId: caseId, Message: "soru"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, constant.NoDocumentsMessage, res.Response)
	assert.Empty(t, res.Sources)
	assert.Zero(t, provider.calls, "empty cases must never reach the model")
}

func TestChatService_AskLLMNotConfigured(t *testing.T) {
	caseId := uuid.New()
	uow := newFakeUow()
	uow.cases.cases = []*entity.Case{{Id: caseId, Title: "Dava", CreatedAt: time.Now()}}
	uow.chunks.chunks = chunkEntities(caseId, uuid.New(), "dosya.pdf", 1)

	svc := newChatService(uow, nil)

	res, err := svc.Ask(context.Background(), &dto.ChatRequest{CaseId: caseId, Message: "soru"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, constant.LLMNotConfiguredMessage, res.Response)
	assert.Empty(t, uow.chats.messages, "degraded answers are not persisted")
}

func TestChatService_History(t *testing.T) {
	caseId := uuid.New()
	uow := newFakeUow()
	uow.chats.messages = []*entity.ChatMessage{
		{
			Id:        uuid.New(),
			CaseId:    caseId,
			Message:   "soru",
			Response:  "cevap",
			Sources:   `["a.pdf","b.docx"]`,
			CreatedAt: time.Now(),
		},
	}

	svc := newChatService(uow, &stubLLM{})

	history, err := svc.History(context.Background(), caseId)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []string{"a.pdf", "b.docx"}, history[0].Sources)
}
