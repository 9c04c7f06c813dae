package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage stores one question/answer exchange for a case.
// Sources is the JSON-encoded list of filenames the answer was grounded on.
type ChatMessage struct {
	Id        uuid.UUID
	CaseId    uuid.UUID
	Message   string
	Response  string
	Sources   string
	CreatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
