package rag

import (
	"context"
	"fmt"
	"strings"

	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/extract"
	"legal-assistant-be/pkg/textsplit"

	"github.com/google/uuid"
)

// Indexer runs the ingestion pipeline for one document: extract the text,
// split it into overlapping chunks, embed every chunk and replace the
// document's chunk set in the store.
type Indexer struct {
	extractor extract.Extractor
	embedder  embedding.EmbeddingProvider
	store     ChunkStore
	log       logger.ILogger

	chunkSize    int
	chunkOverlap int
	embeddingDim int
}

func NewIndexer(
	extractor extract.Extractor,
	embedder embedding.EmbeddingProvider,
	store ChunkStore,
	log logger.ILogger,
	chunkSize, chunkOverlap, embeddingDim int,
) *Indexer {
	return &Indexer{
		extractor:    extractor,
		embedder:     embedder,
		store:        store,
		log:          log,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		embeddingDim: embeddingDim,
	}
}

// IndexDocument processes one uploaded file and returns the number of chunks
// written. Extraction failures and empty documents are not errors: the
// document's chunk set is cleared and zero is returned, so a broken file
// never blocks the rest of the case.
func (ix *Indexer) IndexDocument(ctx context.Context, caseId, documentId uuid.UUID, filename, path string) (int, error) {
	text, err := ix.extractor.Extract(path)
	if err != nil {
		ix.log.Warn("rag.indexer", "text extraction failed, indexing document as empty", map[string]interface{}{
			"document_id": documentId.String(),
			"filename":    filename,
			"error":       err.Error(),
		})
		text = ""
	}

	if strings.TrimSpace(text) == "" {
		if err := ix.store.ReplaceDocument(ctx, documentId, nil); err != nil {
			return 0, fmt.Errorf("clear chunks for empty document: %w", err)
		}
		return 0, nil
	}

	texts, err := textsplit.SplitText(text, ix.chunkSize, ix.chunkOverlap)
	if err != nil {
		return 0, err
	}

	vectors, err := ix.embedder.GenerateBatch(texts, embedding.TaskTypeRetrievalDocument)
	if err != nil {
		return 0, fmt.Errorf("embed %d chunks: %w", len(texts), err)
	}
	if len(vectors) != len(texts) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(texts))
	}

	chunks := make([]*StoredChunk, len(texts))
	for i, t := range texts {
		if len(vectors[i]) != ix.embeddingDim {
			return 0, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vectors[i]), ix.embeddingDim)
		}
		chunks[i] = &StoredChunk{
			ChunkId:    fmt.Sprintf("doc_%s_chunk_%d", documentId, i),
			Text:       t,
			Embedding:  vectors[i],
			CaseId:     caseId,
			DocumentId: documentId,
			Filename:   filename,
			ChunkIndex: i,
		}
	}

	if err := ix.store.ReplaceDocument(ctx, documentId, chunks); err != nil {
		return 0, fmt.Errorf("replace chunks: %w", err)
	}

	return len(chunks), nil
}
