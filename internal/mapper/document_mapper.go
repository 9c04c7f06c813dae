package mapper

import (
	"time"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/model"

	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Document{
		Id:         d.Id,
		CaseId:     d.CaseId,
		Filename:   d.Filename,
		FilePath:   d.FilePath,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		IsIndexed:  d.IsIndexed,
		UploadedAt: d.UploadedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  d.DeletedAt.Valid,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.Document{
		Id:         d.Id,
		CaseId:     d.CaseId,
		Filename:   d.Filename,
		FilePath:   d.FilePath,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		IsIndexed:  d.IsIndexed,
		UploadedAt: d.UploadedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *DocumentMapper) ToEntities(documents []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(documents))
	for i, d := range documents {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
