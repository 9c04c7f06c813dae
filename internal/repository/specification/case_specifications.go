package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCaseID struct {
	CaseID uuid.UUID
}

func (s ByCaseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_id = ?", s.CaseID)
}

type ByDocumentID struct {
	DocumentID uuid.UUID
}

func (s ByDocumentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentID)
}

type ByCaseNumber struct {
	CaseNumber string
}

func (s ByCaseNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("case_number = ?", s.CaseNumber)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// CaseSearchQuery filters cases by title, client name or case number (case-insensitive)
type CaseSearchQuery struct {
	Query string
}

func (s CaseSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR client_name ILIKE ? OR case_number ILIKE ?", pattern, pattern, pattern)
}
