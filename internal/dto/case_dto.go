package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCaseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	CaseNumber  string `json:"case_number"`
}

type CreateCaseResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCaseRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	CaseNumber  string `json:"case_number"`
	Status      string `json:"status" validate:"omitempty,oneof=active closed archived"`
}

type UpdateCaseResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowCaseResponse struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ClientName    string     `json:"client_name"`
	CaseNumber    string     `json:"case_number"`
	Status        string     `json:"status"`
	DocumentCount int64      `json:"document_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type ListCaseResponse struct {
	Id         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ClientName string    `json:"client_name"`
	CaseNumber string    `json:"case_number"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
