package mapper

import (
	"time"

	"gorm.io/datatypes"

	"parish-be/internal/entity"
	"parish-be/internal/model"
)

type RequestMapper struct{}

func NewRequestMapper() *RequestMapper {
	return &RequestMapper{}
}

func (m *RequestMapper) ToEntity(r *model.ServiceRequest) *entity.ServiceRequest {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.ServiceRequest{
		Id:                r.Id,
		Category:          entity.RequestCategory(r.Category),
		ServiceType:       r.ServiceType,
		RequesterName:     r.RequesterName,
		ContactInfo:       r.ContactInfo,
		Details:           r.Details,
		PreferredDate:     r.PreferredDate,
		Status:            entity.RequestStatus(r.Status),
		ConfirmedSchedule: r.ConfirmedSchedule,
		AdminNotes:        r.AdminNotes,
		SubmissionDate:    time.Time(r.SubmissionDate),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *RequestMapper) ToModel(r *entity.ServiceRequest) *model.ServiceRequest {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.ServiceRequest{
		Id:                r.Id,
		Category:          string(r.Category),
		ServiceType:       r.ServiceType,
		RequesterName:     r.RequesterName,
		ContactInfo:       r.ContactInfo,
		Details:           r.Details,
		PreferredDate:     r.PreferredDate,
		Status:            string(r.Status),
		ConfirmedSchedule: r.ConfirmedSchedule,
		AdminNotes:        r.AdminNotes,
		SubmissionDate:    datatypes.Date(r.SubmissionDate),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *RequestMapper) ToEntities(requests []*model.ServiceRequest) []*entity.ServiceRequest {
	entities := make([]*entity.ServiceRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
