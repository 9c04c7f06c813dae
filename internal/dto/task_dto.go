package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	CaseId      *uuid.UUID `json:"case_id"`
	DueDate     *time.Time `json:"due_date"`
}

type CreateTaskResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTaskRequest struct {
	Id          uuid.UUID
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowTaskResponse struct {
	Id          uuid.UUID  `json:"id"`
	CaseId      *uuid.UUID `json:"case_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
