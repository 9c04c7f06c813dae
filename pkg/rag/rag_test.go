package rag

import (
	"context"
	"errors"
	"fmt"

	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/llm"

	"github.com/google/uuid"
)

// fakeExtractor returns canned text or a canned error per path.
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(path string) (string, error) {
	return f.text, f.err
}

// fakeEmbedder returns deterministic vectors of a configurable dimension.
type fakeEmbedder struct {
	dim       int
	err       error
	generated []string
}

func (f *fakeEmbedder) vector(seed int) []float32 {
	v := make([]float32, f.dim)
	for i := range v {
		v[i] = float32(seed + i)
	}
	return v
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.generated = append(f.generated, text)
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: f.vector(len(f.generated))},
	}, nil
}

func (f *fakeEmbedder) GenerateBatch(texts []string, taskType string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		f.generated = append(f.generated, texts[i])
		vectors[i] = f.vector(i)
	}
	return vectors, nil
}

// memoryStore keeps chunks per document in memory.
type memoryStore struct {
	chunks     map[uuid.UUID][]*StoredChunk // by document id
	searchErr  error
	replaceErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{chunks: make(map[uuid.UUID][]*StoredChunk)}
}

func (s *memoryStore) ReplaceDocument(ctx context.Context, documentId uuid.UUID, chunks []*StoredChunk) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	if len(chunks) == 0 {
		delete(s.chunks, documentId)
		return nil
	}
	s.chunks[documentId] = chunks
	return nil
}

func (s *memoryStore) SearchSimilar(ctx context.Context, caseId uuid.UUID, emb []float32, limit int) ([]*StoredChunk, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	var out []*StoredChunk
	for _, docChunks := range s.chunks {
		for _, c := range docChunks {
			if c.CaseId == caseId {
				out = append(out, c)
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) HasChunks(ctx context.Context, caseId uuid.UUID) (bool, error) {
	for _, docChunks := range s.chunks {
		for _, c := range docChunks {
			if c.CaseId == caseId {
				return true, nil
			}
		}
	}
	return false, nil
}

// fakeLLM records the last call and echoes a canned answer.
type fakeLLM struct {
	answer      string
	err         error
	lastHistory []llm.Message
	lastOptions llm.Options
	calls       int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	f.lastHistory = history
	f.lastOptions = llm.Options{}
	for _, opt := range opts {
		opt(&f.lastOptions)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var errBackendDown = errors.New("backend down")

func chunkFixture(caseId, docId uuid.UUID, filename string, n int) []*StoredChunk {
	chunks := make([]*StoredChunk, n)
	for i := 0; i < n; i++ {
		chunks[i] = &StoredChunk{
			ChunkId:    fmt.Sprintf("doc_%s_chunk_%d", docId, i),
			Text:       fmt.Sprintf("chunk %d", i),
			Embedding:  []float32{1, 2, 3},
			CaseId:     caseId,
			DocumentId: docId,
			Filename:   filename,
			ChunkIndex: i,
		}
	}
	return chunks
}
