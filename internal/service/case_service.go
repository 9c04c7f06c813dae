package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/events"
	pktNats "legal-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

type ICaseService interface {
	Create(ctx context.Context, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowCaseResponse, error)
	List(ctx context.Context, search, status string) ([]*dto.ListCaseResponse, error)
	Update(ctx context.Context, req *dto.UpdateCaseRequest) (*dto.UpdateCaseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type caseService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
	uploadDir      string
}

func NewCaseService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	uploadDir string,
) ICaseService {
	return &caseService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
		uploadDir:      uploadDir,
	}
}

func (s *caseService) Create(ctx context.Context, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c := entity.Case{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ClientName:  req.ClientName,
		CaseNumber:  req.CaseNumber,
		Status:      entity.CaseStatusActive,
		CreatedAt:   time.Now(),
	}

	if err := uow.CaseRepository().Create(ctx, &c); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewEvent(events.TypeCaseCreated, map[string]interface{}{
			"case_id":     c.Id,
			"title":       c.Title,
			"case_number": c.CaseNumber,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("case.service", "failed to publish CASE_CREATED event", map[string]interface{}{
				"case_id": c.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.CreateCaseResponse{Id: c.Id}, nil
}

func (s *caseService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	docCount, err := uow.DocumentRepository().Count(ctx, specification.ByCaseID{CaseID: c.Id})
	if err != nil {
		return nil, err
	}

	return &dto.ShowCaseResponse{
		Id:            c.Id,
		Title:         c.Title,
		Description:   c.Description,
		ClientName:    c.ClientName,
		CaseNumber:    c.CaseNumber,
		Status:        c.Status,
		DocumentCount: docCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func (s *caseService) List(ctx context.Context, search, status string) ([]*dto.ListCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if search != "" {
		specs = append(specs, specification.CaseSearchQuery{Query: search})
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	cases, err := uow.CaseRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ListCaseResponse, len(cases))
	for i, c := range cases {
		res[i] = &dto.ListCaseResponse{
			Id:         c.Id,
			Title:      c.Title,
			ClientName: c.ClientName,
			CaseNumber: c.CaseNumber,
			Status:     c.Status,
			CreatedAt:  c.CreatedAt,
		}
	}
	return res, nil
}

func (s *caseService) Update(ctx context.Context, req *dto.UpdateCaseRequest) (*dto.UpdateCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	c.Title = req.Title
	c.Description = req.Description
	c.ClientName = req.ClientName
	c.CaseNumber = req.CaseNumber
	if req.Status != "" {
		c.Status = req.Status
	}

	if err := uow.CaseRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	return &dto.UpdateCaseResponse{Id: c.Id}, nil
}

// Delete removes a case and everything hanging off it: chunks, documents,
// chat history and the uploaded files on disk. Tasks keep their rows but
// lose the case reference semantics, matching the optional case_id.
func (s *caseService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByCaseId(ctx, id); err != nil {
		return false, err
	}
	if err := uow.DocumentRepository().DeleteByCaseId(ctx, id); err != nil {
		return false, err
	}
	if err := uow.ChatMessageRepository().DeleteByCaseId(ctx, id); err != nil {
		return false, err
	}
	if err := uow.CaseRepository().Delete(ctx, id); err != nil {
		return false, err
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	// Best effort file cleanup, the rows are already gone
	caseDir := filepath.Join(s.uploadDir, fmt.Sprintf("case_%s", id))
	if err := os.RemoveAll(caseDir); err != nil {
		s.log.Warn("case.service", "failed to remove case upload dir", map[string]interface{}{
			"case_id": id.String(),
			"dir":     caseDir,
			"error":   err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewEvent(events.TypeCaseDeleted, map[string]interface{}{
			"case_id": id,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("case.service", "failed to publish CASE_DELETED event", map[string]interface{}{
				"case_id": id.String(),
				"error":   err.Error(),
			})
		}
	}

	return true, nil
}
