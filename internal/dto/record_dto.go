package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRecordRequest struct {
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Type      string `json:"type" validate:"required,oneof=BAPTISM CONFIRMATION MARRIAGE FUNERAL"`
	Officiant string `json:"officiant" validate:"required"`
	Details   string `json:"details"`
}

type UpdateRecordRequest struct {
	Id        uuid.UUID `json:"-"`
	Name      string    `json:"name" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Type      string    `json:"type" validate:"required,oneof=BAPTISM CONFIRMATION MARRIAGE FUNERAL"`
	Officiant string    `json:"officiant" validate:"required"`
	Details   string    `json:"details"`
}

type ArchiveRecordRequest struct {
	Id         uuid.UUID `json:"-"`
	ArchivedBy string    `json:"archived_by" validate:"required"`
	Reason     string    `json:"reason"`
}

type SacramentRecordResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Date          string     `json:"date"`
	Type          string     `json:"type"`
	Officiant     string     `json:"officiant"`
	Details       string     `json:"details"`
	IsArchived    bool       `json:"is_archived"`
	ArchivedAt    *time.Time `json:"archived_at,omitempty"`
	ArchivedBy    *string    `json:"archived_by,omitempty"`
	ArchiveReason *string    `json:"archive_reason,omitempty"`
}
