package mapper

import (
	"time"

	"gorm.io/datatypes"

	"parish-be/internal/entity"
	"parish-be/internal/model"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ToEntity(r *model.SacramentRecord) *entity.SacramentRecord {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.SacramentRecord{
		Id:            r.Id,
		Name:          r.Name,
		Date:          time.Time(r.Date),
		Type:          entity.SacramentType(r.Type),
		Officiant:     r.Officiant,
		Details:       r.Details,
		IsArchived:    r.IsArchived,
		ArchivedAt:    r.ArchivedAt,
		ArchivedBy:    r.ArchivedBy,
		ArchiveReason: r.ArchiveReason,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *RecordMapper) ToModel(r *entity.SacramentRecord) *model.SacramentRecord {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.SacramentRecord{
		Id:            r.Id,
		Name:          r.Name,
		Date:          datatypes.Date(r.Date),
		Type:          string(r.Type),
		Officiant:     r.Officiant,
		Details:       r.Details,
		IsArchived:    r.IsArchived,
		ArchivedAt:    r.ArchivedAt,
		ArchivedBy:    r.ArchivedBy,
		ArchiveReason: r.ArchiveReason,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *RecordMapper) ToEntities(records []*model.SacramentRecord) []*entity.SacramentRecord {
	entities := make([]*entity.SacramentRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
