package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DocumentChunk struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChunkId    string          `gorm:"uniqueIndex;not null"` // doc_{document_id}_chunk_{i}
	Text       string          `gorm:"type:text"`
	Embedding  pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text use 768 dimensions
	CaseId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DocumentId uuid.UUID       `gorm:"type:uuid;not null;index"`
	Filename   string          `gorm:"not null"`
	ChunkIndex int             `gorm:"default:0"` // 0-based, contiguous within a document
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
