package service

import (
	"context"
	"testing"
	"time"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/rag"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEmbedder counts query embeddings so tests can tell whether a
// draft triggered retrieval.
type recordingEmbedder struct {
	queries int
}

func (e *recordingEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	e.queries++
	return stubEmbedder{}.Generate(text, taskType)
}

func (e *recordingEmbedder) GenerateBatch(texts []string, taskType string) ([][]float32, error) {
	return stubEmbedder{}.GenerateBatch(texts, taskType)
}

func newTemplateService(uow *fakeUow, provider *stubLLM, embedder embedding.EmbeddingProvider) ITemplateService {
	factory := &fakeUowFactory{uow: uow}
	store := NewChunkStore(factory)
	retriever := rag.NewRetriever(embedder, store, 5)
	return NewTemplateService(factory, retriever, rag.NewGenerator(provider))
}

func TestTemplateService_Generate(t *testing.T) {
	caseId := uuid.New()
	docId := uuid.New()

	uow := newFakeUow()
	uow.cases.cases = []*entity.Case{{
		Id:          caseId,
		Title:       "Kira Uyuşmazlığı",
		ClientName:  "Ayşe Demir",
		CaseNumber:  "2024/123",
		Description: "Kira bedeli ödenmedi.",
		CreatedAt:   time.Now(),
	}}
	uow.chunks.chunks = chunkEntities(caseId, docId, "sozlesme.pdf", 4)
	uow.docs.docs = []*entity.Document{
		{Id: docId, CaseId: caseId, Filename: "sozlesme.pdf"},
		{Id: uuid.New(), CaseId: caseId, Filename: "ihtarname.docx"},
	}

	provider := &stubLLM{answer: "DİLEKÇE TASLAĞI..."}
	embedder := &recordingEmbedder{}
	svc := newTemplateService(uow, provider, embedder)

	res, err := svc.Generate(context.Background(), &dto.GenerateTemplateRequest{
		CaseId:       caseId.String(),
		TemplateType: rag.TemplateTypeDilekce,
		Context:      "kira bedeli tahliye",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, rag.TemplateTypeDilekce, res.TemplateType)
	assert.Equal(t, "DİLEKÇE TASLAĞI...", res.Draft)
	assert.Equal(t, 1, embedder.queries)
	// Sources are every file of the case, not just the retrieved chunks
	assert.ElementsMatch(t, []string{"sozlesme.pdf", "ihtarname.docx"}, res.Sources)
}

func TestTemplateService_GenerateWithoutContextSkipsRetrieval(t *testing.T) {
	caseId := uuid.New()

	uow := newFakeUow()
	uow.cases.cases = []*entity.Case{{
		Id:        caseId,
		Title:     "Kira Uyuşmazlığı",
		CreatedAt: time.Now(),
	}}
	uow.chunks.chunks = chunkEntities(caseId, uuid.New(), "sozlesme.pdf", 4)

	provider := &stubLLM{answer: "taslak"}
	embedder := &recordingEmbedder{}
	svc := newTemplateService(uow, provider, embedder)

	res, err := svc.Generate(context.Background(), &dto.GenerateTemplateRequest{
		CaseId:       caseId.String(),
		TemplateType: rag.TemplateTypeTutanak,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "taslak", res.Draft)
	assert.Zero(t, embedder.queries, "no context query means no retrieval")
	assert.Equal(t, 1, provider.calls)
}

func TestTemplateService_GenerateUnknownType(t *testing.T) {
	caseId := uuid.New()
	uow := newFakeUow()
	uow.cases.cases = []*entity.Case{{Id: caseId, Title: "Dava", CreatedAt: time.Now()}}

	provider := &stubLLM{answer: "x"}
	svc := newTemplateService(uow, provider, stubEmbedder{})

	_, err := svc.Generate(context.Background(), &dto.GenerateTemplateRequest{
		CaseId:       caseId.String(),
		TemplateType: "vekaletname",
	})
	assert.ErrorIs(t, err, rag.ErrUnknownTemplateType)
	assert.Zero(t, provider.calls)
}

func TestTemplateService_GenerateCaseNotFound(t *testing.T) {
	svc := newTemplateService(newFakeUow(), &stubLLM{}, stubEmbedder{})

	res, err := svc.Generate(context.Background(), &dto.GenerateTemplateRequest{
		CaseId:       uuid.New().String(),
		TemplateType: rag.TemplateTypeDilekce,
	})
	require.NoError(t, err)
	assert.Nil(t, res)
}
