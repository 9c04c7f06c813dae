package unitofwork

import (
	"context"

	"legal-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CaseRepository() contract.CaseRepository
	DocumentRepository() contract.DocumentRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
	TaskRepository() contract.TaskRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
