package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Case struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	ClientName  string
	CaseNumber  string         `gorm:"uniqueIndex"`
	Status      string         `gorm:"default:active"` // active, closed, archived
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Case) TableName() string {
	return "cases"
}
