package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id         uuid.UUID
	CaseId     uuid.UUID
	Filename   string
	FilePath   string
	FileType   string
	FileSize   int64
	IsIndexed  bool
	UploadedAt time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
