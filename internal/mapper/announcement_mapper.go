package mapper

import (
	"time"

	"gorm.io/datatypes"

	"parish-be/internal/entity"
	"parish-be/internal/model"
)

type AnnouncementMapper struct{}

func NewAnnouncementMapper() *AnnouncementMapper {
	return &AnnouncementMapper{}
}

func (m *AnnouncementMapper) ToEntity(a *model.Announcement) *entity.Announcement {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Announcement{
		Id:        a.Id,
		Title:     a.Title,
		Content:   a.Content,
		Date:      time.Time(a.Date),
		IsPublic:  a.IsPublic,
		ImageUrl:  a.ImageUrl,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AnnouncementMapper) ToModel(a *entity.Announcement) *model.Announcement {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Announcement{
		Id:        a.Id,
		Title:     a.Title,
		Content:   a.Content,
		Date:      datatypes.Date(a.Date),
		IsPublic:  a.IsPublic,
		ImageUrl:  a.ImageUrl,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AnnouncementMapper) ToEntities(announcements []*model.Announcement) []*entity.Announcement {
	entities := make([]*entity.Announcement, len(announcements))
	for i, a := range announcements {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
