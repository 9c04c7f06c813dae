package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is one overlapping window of a document's extracted text
// together with its embedding. ChunkId follows the doc_{id}_chunk_{i}
// scheme so a re-index writes the same ids it replaces.
type DocumentChunk struct {
	Id         uuid.UUID
	ChunkId    string
	Text       string
	Embedding  []float32
	CaseId     uuid.UUID
	DocumentId uuid.UUID
	Filename   string
	ChunkIndex int
	CreatedAt  time.Time
}
