package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadDocumentResponse struct {
	Id        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	IsIndexed bool      `json:"is_indexed"`
}

// PublishIndexDocumentMessage is the payload queued for the background
// indexing worker after an upload.
type PublishIndexDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	CaseId     uuid.UUID `json:"case_id"`
}

type ShowDocumentResponse struct {
	Id         uuid.UUID `json:"id"`
	CaseId     uuid.UUID `json:"case_id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	IsIndexed  bool      `json:"is_indexed"`
	UploadedAt time.Time `json:"uploaded_at"`
}
