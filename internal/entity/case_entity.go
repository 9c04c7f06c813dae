package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	CaseStatusActive   = "active"
	CaseStatusClosed   = "closed"
	CaseStatusArchived = "archived"
)

type Case struct {
	Id          uuid.UUID
	Title       string
	Description string
	ClientName  string
	CaseNumber  string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
