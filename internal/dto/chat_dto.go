package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	CaseId  uuid.UUID
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources"`
}

type ChatHistoryItem struct {
	Id        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Sources   []string  `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}
