package service

import (
	"context"
	"fmt"
	"strings"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/rag"

	"github.com/google/uuid"
)

const (
	// templateRetrieveTopK is how many chunks a context query pulls back.
	templateRetrieveTopK = 3
	// templateContextChunks caps how much retrieved text goes into a draft prompt.
	templateContextChunks = 2
)

type ITemplateService interface {
	Generate(ctx context.Context, req *dto.GenerateTemplateRequest) (*dto.GenerateTemplateResponse, error)
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
	retriever  *rag.Retriever
	generator  *rag.Generator
}

func NewTemplateService(
	uowFactory unitofwork.RepositoryFactory,
	retriever *rag.Retriever,
	generator *rag.Generator,
) ITemplateService {
	return &templateService{
		uowFactory: uowFactory,
		retriever:  retriever,
		generator:  generator,
	}
}

// Generate drafts a legal document of the requested type grounded on the
// case's indexed documents. Sources list every file of the case, since a
// draft draws on the whole file, not individual chunks.
func (s *templateService) Generate(ctx context.Context, req *dto.GenerateTemplateRequest) (*dto.GenerateTemplateResponse, error) {
	caseId, err := uuid.Parse(req.CaseId)
	if err != nil {
		return nil, fmt.Errorf("parse case id: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: caseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	// Retrieval only happens when the caller supplies a context query.
	// Without one the draft is built from the case fields alone.
	caseContext := ""
	if query := strings.TrimSpace(req.Context); query != "" {
		result, err := s.retriever.RetrieveN(ctx, caseId, query, templateRetrieveTopK)
		if err != nil {
			return nil, err
		}
		chunks := result.Chunks
		if len(chunks) > templateContextChunks {
			chunks = chunks[:templateContextChunks]
		}
		caseContext = rag.BuildContext(chunks)
	}

	draft, err := s.generator.GenerateDraft(ctx, req.TemplateType, rag.CaseFields{
		CaseNumber:  c.CaseNumber,
		ClientName:  c.ClientName,
		Title:       c.Title,
		Description: c.Description,
	}, caseContext)
	if err != nil {
		return nil, err
	}

	docs, err := uow.DocumentRepository().FindAll(ctx, specification.ByCaseID{CaseID: caseId})
	if err != nil {
		return nil, err
	}
	sources := make([]string, len(docs))
	for i, d := range docs {
		sources[i] = d.Filename
	}

	return &dto.GenerateTemplateResponse{
		TemplateType: req.TemplateType,
		Draft:        draft,
		Sources:      sources,
	}, nil
}
