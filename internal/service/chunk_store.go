package service

import (
	"context"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/rag"

	"github.com/google/uuid"
)

// uowChunkStore adapts the unit-of-work repositories to the rag.ChunkStore
// port. Replaces run delete-and-insert inside one transaction so concurrent
// readers never see a half-indexed document.
type uowChunkStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChunkStore(uowFactory unitofwork.RepositoryFactory) rag.ChunkStore {
	return &uowChunkStore{uowFactory: uowFactory}
}

func (s *uowChunkStore) ReplaceDocument(ctx context.Context, documentId uuid.UUID, chunks []*rag.StoredChunk) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, documentId); err != nil {
		return err
	}

	if len(chunks) > 0 {
		entities := make([]*entity.DocumentChunk, len(chunks))
		for i, c := range chunks {
			entities[i] = &entity.DocumentChunk{
				Id:         uuid.New(),
				ChunkId:    c.ChunkId,
				Text:       c.Text,
				Embedding:  c.Embedding,
				CaseId:     c.CaseId,
				DocumentId: c.DocumentId,
				Filename:   c.Filename,
				ChunkIndex: c.ChunkIndex,
			}
		}
		if err := uow.DocumentChunkRepository().CreateBulk(ctx, entities); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *uowChunkStore) SearchSimilar(ctx context.Context, caseId uuid.UUID, embedding []float32, limit int) ([]*rag.StoredChunk, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entities, err := uow.DocumentChunkRepository().SearchSimilar(ctx, embedding, limit, caseId)
	if err != nil {
		return nil, err
	}

	chunks := make([]*rag.StoredChunk, len(entities))
	for i, e := range entities {
		chunks[i] = &rag.StoredChunk{
			ChunkId:    e.ChunkId,
			Text:       e.Text,
			Embedding:  e.Embedding,
			CaseId:     e.CaseId,
			DocumentId: e.DocumentId,
			Filename:   e.Filename,
			ChunkIndex: e.ChunkIndex,
		}
	}
	return chunks, nil
}

func (s *uowChunkStore) HasChunks(ctx context.Context, caseId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DocumentChunkRepository().HasChunksForCase(ctx, caseId)
}
