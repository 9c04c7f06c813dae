package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
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

type IDocumentService interface {
	Upload(ctx context.Context, caseId uuid.UUID, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error)
	List(ctx context.Context, caseId uuid.UUID) ([]*dto.ShowDocumentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Reindex(ctx context.Context, id uuid.UUID) (bool, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
	uploadDir        string
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	uploadDir string,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
		uploadDir:        uploadDir,
	}
}

// Upload stores the file under uploads/case_{id}/, records the document row
// and queues it for background indexing. The response returns immediately
// with is_indexed=false.
func (s *documentService) Upload(ctx context.Context, caseId uuid.UUID, file *multipart.FileHeader) (*dto.UploadDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: caseId})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	filename := sanitizeFilename(file.Filename)
	caseDir := filepath.Join(s.uploadDir, fmt.Sprintf("case_%s", caseId))
	if err := os.MkdirAll(caseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	docId := uuid.New()
	// Prefix with the document id so re-uploads of the same filename never clash
	storedName := fmt.Sprintf("%s_%s", docId, filename)
	dstPath := filepath.Join(caseDir, storedName)

	if err := saveMultipartFile(file, dstPath); err != nil {
		return nil, err
	}

	doc := entity.Document{
		Id:         docId,
		CaseId:     caseId,
		Filename:   filename,
		FilePath:   dstPath,
		FileType:   strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."),
		FileSize:   file.Size,
		IsIndexed:  false,
		UploadedAt: time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
		os.Remove(dstPath)
		return nil, err
	}

	msgJson, err := json.Marshal(dto.PublishIndexDocumentMessage{
		DocumentId: doc.Id,
		CaseId:     caseId,
	})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.UploadDocumentResponse{
		Id:        doc.Id,
		Filename:  doc.Filename,
		IsIndexed: doc.IsIndexed,
	}, nil
}

func (s *documentService) List(ctx context.Context, caseId uuid.UUID) ([]*dto.ShowDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.ByCaseID{CaseID: caseId},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowDocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = toShowDocumentResponse(d)
	}
	return res, nil
}

func (s *documentService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return toShowDocumentResponse(doc), nil
}

func toShowDocumentResponse(d *entity.Document) *dto.ShowDocumentResponse {
	return &dto.ShowDocumentResponse{
		Id:         d.Id,
		CaseId:     d.CaseId,
		Filename:   d.Filename,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		IsIndexed:  d.IsIndexed,
		UploadedAt: d.UploadedAt,
	}
}

// Delete removes the document row, its chunks and the stored file.
func (s *documentService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if doc == nil {
		return false, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, id); err != nil {
		return false, err
	}
	if err := uow.DocumentRepository().Delete(ctx, id); err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}

	if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("document.service", "failed to remove uploaded file", map[string]interface{}{
			"document_id": id.String(),
			"path":        doc.FilePath,
			"error":       err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewEvent(events.TypeDocumentDeleted, map[string]interface{}{
			"document_id": id,
			"case_id":     doc.CaseId,
			"filename":    doc.Filename,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("document.service", "failed to publish DOCUMENT_DELETED event", map[string]interface{}{
				"document_id": id.String(),
				"error":       err.Error(),
			})
		}
	}

	return true, nil
}

// Reindex queues an already uploaded document for another indexing pass.
func (s *documentService) Reindex(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if doc == nil {
		return false, nil
	}

	msgJson, err := json.Marshal(dto.PublishIndexDocumentMessage{
		DocumentId: doc.Id,
		CaseId:     doc.CaseId,
	})
	if err != nil {
		return false, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return false, err
	}
	return true, nil
}

// sanitizeFilename strips any path components from a client supplied name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "document"
	}
	return name
}

func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
