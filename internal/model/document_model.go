package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaseId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename   string    `gorm:"not null"`
	FilePath   string    `gorm:"not null"`
	FileType   string
	FileSize   int64
	IsIndexed  bool           `gorm:"default:false"`
	UploadedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
