package contract

import (
	"context"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentChunkRepository interface {
	Create(ctx context.Context, chunk *entity.DocumentChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	DeleteByCaseId(ctx context.Context, caseId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentChunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// HasChunksForCase reports whether at least one chunk is indexed for the case.
	HasChunksForCase(ctx context.Context, caseId uuid.UUID) (bool, error)
	// SearchSimilar returns the chunks of a case closest to the query embedding,
	// ordered by cosine distance.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, caseId uuid.UUID) ([]*entity.DocumentChunk, error)
}
