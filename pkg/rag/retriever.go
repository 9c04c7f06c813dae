package rag

import (
	"context"
	"fmt"

	"legal-assistant-be/pkg/embedding"

	"github.com/google/uuid"
)

// RetrieveResult carries the chunks most relevant to a query plus the
// distinct filenames they came from, in retrieval order.
type RetrieveResult struct {
	Chunks  []*StoredChunk
	Sources []string
}

// Retriever answers "which parts of this case talk about X" by embedding the
// query and running a case-scoped nearest-neighbour search.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	store    ChunkStore
	topK     int
}

func NewRetriever(embedder embedding.EmbeddingProvider, store ChunkStore, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{
		embedder: embedder,
		store:    store,
		topK:     topK,
	}
}

// Retrieve returns the top chunks for the query. A case with nothing indexed
// yields an empty result without touching the embedding backend.
func (r *Retriever) Retrieve(ctx context.Context, caseId uuid.UUID, query string) (*RetrieveResult, error) {
	return r.RetrieveN(ctx, caseId, query, r.topK)
}

// RetrieveN is Retrieve with an explicit result count.
func (r *Retriever) RetrieveN(ctx context.Context, caseId uuid.UUID, query string, limit int) (*RetrieveResult, error) {
	if limit <= 0 {
		limit = r.topK
	}

	hasChunks, err := r.store.HasChunks(ctx, caseId)
	if err != nil {
		return nil, fmt.Errorf("check indexed chunks: %w", err)
	}
	if !hasChunks {
		return &RetrieveResult{}, nil
	}

	res, err := r.embedder.Generate(query, embedding.TaskTypeRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	chunks, err := r.store.SearchSimilar(ctx, caseId, res.Embedding.Values, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	return &RetrieveResult{
		Chunks:  chunks,
		Sources: distinctFilenames(chunks),
	}, nil
}

// distinctFilenames deduplicates source filenames preserving first-seen order.
func distinctFilenames(chunks []*StoredChunk) []string {
	seen := make(map[string]bool, len(chunks))
	var sources []string
	for _, c := range chunks {
		if !seen[c.Filename] {
			seen[c.Filename] = true
			sources = append(sources, c.Filename)
		}
	}
	return sources
}
