package rag

import (
	"context"

	"github.com/google/uuid"
)

// StoredChunk is the indexer's view of one indexed window of a document.
type StoredChunk struct {
	ChunkId    string
	Text       string
	Embedding  []float32
	CaseId     uuid.UUID
	DocumentId uuid.UUID
	Filename   string
	ChunkIndex int
}

// ChunkStore is the persistence port for indexed chunks. The production
// implementation writes to pgvector; tests plug in fakes.
type ChunkStore interface {
	// ReplaceDocument atomically removes every chunk of the document and
	// writes the new set. An empty set just clears the document.
	ReplaceDocument(ctx context.Context, documentId uuid.UUID, chunks []*StoredChunk) error

	// SearchSimilar returns the case's chunks nearest to the query
	// embedding, ordered by cosine distance.
	SearchSimilar(ctx context.Context, caseId uuid.UUID, embedding []float32, limit int) ([]*StoredChunk, error)

	// HasChunks reports whether the case has anything indexed at all.
	HasChunks(ctx context.Context, caseId uuid.UUID) (bool, error)
}
