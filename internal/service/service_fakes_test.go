package service

import (
	"context"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/embedding"
	"legal-assistant-be/pkg/llm"
	"legal-assistant-be/pkg/rag"

	"github.com/google/uuid"
)

// fakeUow wires hand-rolled repository fakes behind the UnitOfWork interface.
type fakeUow struct {
	cases  *fakeCaseRepo
	docs   *fakeDocumentRepo
	chunks *fakeChunkRepo
	tasks  *fakeTaskRepo
	chats  *fakeChatRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		cases:  &fakeCaseRepo{},
		docs:   &fakeDocumentRepo{},
		chunks: &fakeChunkRepo{},
		tasks:  &fakeTaskRepo{},
		chats:  &fakeChatRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) CaseRepository() contract.CaseRepository                   { return u.cases }
func (u *fakeUow) DocumentRepository() contract.DocumentRepository           { return u.docs }
func (u *fakeUow) DocumentChunkRepository() contract.DocumentChunkRepository { return u.chunks }
func (u *fakeUow) TaskRepository() contract.TaskRepository                   { return u.tasks }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository     { return u.chats }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// --- Repository fakes ---

type fakeCaseRepo struct {
	cases []*entity.Case
	err   error
}

func (r *fakeCaseRepo) Create(ctx context.Context, c *entity.Case) error {
	r.cases = append(r.cases, c)
	return r.err
}

func (r *fakeCaseRepo) Update(ctx context.Context, c *entity.Case) error { return r.err }

func (r *fakeCaseRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *fakeCaseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.cases) == 0 {
		return nil, nil
	}
	return r.cases[0], nil
}

func (r *fakeCaseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error) {
	return r.cases, r.err
}

func (r *fakeCaseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.cases)), r.err
}

type fakeDocumentRepo struct {
	docs []*entity.Document
	err  error
}

func (r *fakeDocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	r.docs = append(r.docs, d)
	return r.err
}

func (r *fakeDocumentRepo) Update(ctx context.Context, d *entity.Document) error { return r.err }

func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *fakeDocumentRepo) DeleteByCaseId(ctx context.Context, caseId uuid.UUID) error { return r.err }

func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	if len(r.docs) == 0 {
		return nil, r.err
	}
	return r.docs[0], r.err
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	return r.docs, r.err
}

func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.docs)), r.err
}

type fakeChunkRepo struct {
	chunks []*entity.DocumentChunk
	err    error
}

func (r *fakeChunkRepo) Create(ctx context.Context, c *entity.DocumentChunk) error {
	r.chunks = append(r.chunks, c)
	return r.err
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error {
	r.chunks = append(r.chunks, chunks...)
	return r.err
}

func (r *fakeChunkRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *fakeChunkRepo) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	kept := r.chunks[:0]
	for _, c := range r.chunks {
		if c.DocumentId != documentId {
			kept = append(kept, c)
		}
	}
	r.chunks = kept
	return r.err
}

func (r *fakeChunkRepo) DeleteByCaseId(ctx context.Context, caseId uuid.UUID) error {
	kept := r.chunks[:0]
	for _, c := range r.chunks {
		if c.CaseId != caseId {
			kept = append(kept, c)
		}
	}
	r.chunks = kept
	return r.err
}

func (r *fakeChunkRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentChunk, error) {
	if len(r.chunks) == 0 {
		return nil, r.err
	}
	return r.chunks[0], r.err
}

func (r *fakeChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error) {
	return r.chunks, r.err
}

func (r *fakeChunkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.chunks)), r.err
}

func (r *fakeChunkRepo) HasChunksForCase(ctx context.Context, caseId uuid.UUID) (bool, error) {
	for _, c := range r.chunks {
		if c.CaseId == caseId {
			return true, r.err
		}
	}
	return false, r.err
}

func (r *fakeChunkRepo) SearchSimilar(ctx context.Context, emb []float32, limit int, caseId uuid.UUID) ([]*entity.DocumentChunk, error) {
	var out []*entity.DocumentChunk
	for _, c := range r.chunks {
		if c.CaseId == caseId {
			out = append(out, c)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, r.err
}

type fakeTaskRepo struct {
	tasks []*entity.Task
	err   error
}

func (r *fakeTaskRepo) Create(ctx context.Context, t *entity.Task) error {
	r.tasks = append(r.tasks, t)
	return r.err
}

func (r *fakeTaskRepo) Update(ctx context.Context, t *entity.Task) error { return r.err }

func (r *fakeTaskRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *fakeTaskRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error) {
	if len(r.tasks) == 0 {
		return nil, r.err
	}
	return r.tasks[0], r.err
}

func (r *fakeTaskRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	out := r.tasks
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByCaseID:
			var kept []*entity.Task
			for _, t := range out {
				if t.CaseId != nil && *t.CaseId == s.CaseID {
					kept = append(kept, t)
				}
			}
			out = kept
		case specification.FilterBy:
			if s.Field != "completed" {
				continue
			}
			want, _ := s.Value.(bool)
			var kept []*entity.Task
			for _, t := range out {
				if t.Completed == want {
					kept = append(kept, t)
				}
			}
			out = kept
		}
	}
	return out, r.err
}

func (r *fakeTaskRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.tasks)), r.err
}

type fakeChatRepo struct {
	messages []*entity.ChatMessage
	err      error
}

func (r *fakeChatRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	r.messages = append(r.messages, m)
	return r.err
}

func (r *fakeChatRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.err }

func (r *fakeChatRepo) DeleteByCaseId(ctx context.Context, caseId uuid.UUID) error { return r.err }

func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	if len(r.messages) == 0 {
		return nil, r.err
	}
	return r.messages[0], r.err
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return r.messages, r.err
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), r.err
}

// --- rag fakes ---

type stubEmbedder struct{}

func (stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{1, 0, 0}},
	}, nil
}

func (stubEmbedder) GenerateBatch(texts []string, taskType string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

type stubLLM struct {
	answer string
	calls  int
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	return s.answer, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, opts...)
}

func chunkEntities(caseId, docId uuid.UUID, filename string, n int) []*entity.DocumentChunk {
	chunks := make([]*entity.DocumentChunk, n)
	for i := range chunks {
		chunks[i] = &entity.DocumentChunk{
			Id:         uuid.New(),
			Text:       "içerik",
			Embedding:  []float32{1, 0, 0},
			CaseId:     caseId,
			DocumentId: docId,
			Filename:   filename,
			ChunkIndex: i,
		}
	}
	return chunks
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var _ rag.ChunkStore = (*uowChunkStore)(nil)
