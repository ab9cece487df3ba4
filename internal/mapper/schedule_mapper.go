package mapper

import (
	"time"

	"parish-be/internal/entity"
	"parish-be/internal/model"
)

type ScheduleMapper struct{}

func NewScheduleMapper() *ScheduleMapper {
	return &ScheduleMapper{}
}

func (m *ScheduleMapper) ToEntity(s *model.MassSchedule) *entity.MassSchedule {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.MassSchedule{
		Id:          s.Id,
		Day:         s.Day,
		Time:        s.Time,
		Description: s.Description,
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ScheduleMapper) ToModel(s *entity.MassSchedule) *model.MassSchedule {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.MassSchedule{
		Id:          s.Id,
		Day:         s.Day,
		Time:        s.Time,
		Description: s.Description,
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ScheduleMapper) ToEntities(schedules []*model.MassSchedule) []*entity.MassSchedule {
	entities := make([]*entity.MassSchedule, len(schedules))
	for i, s := range schedules {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *ScheduleMapper) NoteToEntity(n *model.ScheduleNote) *entity.ScheduleNote {
	if n == nil {
		return nil
	}

	return &entity.ScheduleNote{
		Id:          n.Id,
		Title:       n.Title,
		Body:        n.Body,
		ActionLabel: n.ActionLabel,
		ActionLink:  n.ActionLink,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *ScheduleMapper) NoteToModel(n *entity.ScheduleNote) *model.ScheduleNote {
	if n == nil {
		return nil
	}

	return &model.ScheduleNote{
		Id:          n.Id,
		Title:       n.Title,
		Body:        n.Body,
		ActionLabel: n.ActionLabel,
		ActionLink:  n.ActionLink,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
