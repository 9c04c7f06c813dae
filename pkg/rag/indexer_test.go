package rag

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexer_IndexDocument(t *testing.T) {
	caseId := uuid.New()
	docId := uuid.New()

	extractor := &fakeExtractor{text: strings.Repeat("dava dosyası metni ", 100)}
	embedder := &fakeEmbedder{dim: 8}
	store := newMemoryStore()

	ix := NewIndexer(extractor, embedder, store, nopLogger{}, 200, 50, 8)

	count, err := ix.IndexDocument(context.Background(), caseId, docId, "dosya.pdf", "/tmp/dosya.pdf")
	require.NoError(t, err)
	require.Greater(t, count, 1)

	stored := store.chunks[docId]
	require.Len(t, stored, count)
	for i, c := range stored {
		assert.Equal(t, fmt.Sprintf("doc_%s_chunk_%d", docId, i), c.ChunkId)
		assert.Equal(t, caseId, c.CaseId)
		assert.Equal(t, docId, c.DocumentId)
		assert.Equal(t, "dosya.pdf", c.Filename)
		assert.Equal(t, i, c.ChunkIndex)
		assert.Len(t, c.Embedding, 8)
	}
}

func TestIndexer_EmptyDocumentClearsChunks(t *testing.T) {
	caseId := uuid.New()
	docId := uuid.New()

	store := newMemoryStore()
	store.chunks[docId] = chunkFixture(caseId, docId, "eski.pdf", 3)

	embedder := &fakeEmbedder{dim: 8}
	ix := NewIndexer(&fakeExtractor{text: "   \n  "}, embedder, store, nopLogger{}, 200, 50, 8)

	count, err := ix.IndexDocument(context.Background(), caseId, docId, "eski.pdf", "/tmp/eski.pdf")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.chunks[docId])
	assert.Empty(t, embedder.generated, "empty documents should not reach the embedder")
}

func TestIndexer_ExtractionFailureIndexesEmpty(t *testing.T) {
	caseId := uuid.New()
	docId := uuid.New()

	store := newMemoryStore()
	store.chunks[docId] = chunkFixture(caseId, docId, "bozuk.pdf", 2)

	ix := NewIndexer(&fakeExtractor{err: errBackendDown}, &fakeEmbedder{dim: 8}, store, nopLogger{}, 200, 50, 8)

	count, err := ix.IndexDocument(context.Background(), caseId, docId, "bozuk.pdf", "/tmp/bozuk.pdf")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.chunks[docId])
}

func TestIndexer_DimensionMismatch(t *testing.T) {
	ix := NewIndexer(
		&fakeExtractor{text: strings.Repeat("metin ", 100)},
		&fakeEmbedder{dim: 4},
		newMemoryStore(),
		nopLogger{},
		200, 50, 8,
	)

	_, err := ix.IndexDocument(context.Background(), uuid.New(), uuid.New(), "a.pdf", "/tmp/a.pdf")
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestIndexer_EmbedderFailure(t *testing.T) {
	ix := NewIndexer(
		&fakeExtractor{text: strings.Repeat("metin ", 100)},
		&fakeEmbedder{dim: 8, err: errBackendDown},
		newMemoryStore(),
		nopLogger{},
		200, 50, 8,
	)

	_, err := ix.IndexDocument(context.Background(), uuid.New(), uuid.New(), "a.pdf", "/tmp/a.pdf")
	assert.ErrorIs(t, err, errBackendDown)
}

func TestIndexer_ReindexReplacesChunks(t *testing.T) {
	caseId := uuid.New()
	docId := uuid.New()

	store := newMemoryStore()
	ix := NewIndexer(
		&fakeExtractor{text: strings.Repeat("yeni içerik ", 100)},
		&fakeEmbedder{dim: 8},
		store,
		nopLogger{},
		200, 50, 8,
	)

	_, err := ix.IndexDocument(context.Background(), caseId, docId, "v1.pdf", "/tmp/v1.pdf")
	require.NoError(t, err)
	first := len(store.chunks[docId])

	count, err := ix.IndexDocument(context.Background(), caseId, docId, "v1.pdf", "/tmp/v1.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, count)
	assert.Len(t, store.chunks[docId], count, "reindex must not accumulate chunks")
}
