package mapper

import (
	"time"

	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/model"

	"gorm.io/gorm"
)

type CaseMapper struct{}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{}
}

func (m *CaseMapper) ToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Case{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		ClientName:  c.ClientName,
		CaseNumber:  c.CaseNumber,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   c.DeletedAt.Valid,
	}
}

func (m *CaseMapper) ToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Case{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		ClientName:  c.ClientName,
		CaseNumber:  c.CaseNumber,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *CaseMapper) ToEntities(cases []*model.Case) []*entity.Case {
	entities := make([]*entity.Case, len(cases))
	for i, c := range cases {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
