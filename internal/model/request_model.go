package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ServiceRequest struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Category          string         `gorm:"type:varchar(32);not null;index"`
	ServiceType       string         `gorm:"type:varchar(255);not null"`
	RequesterName     string         `gorm:"type:varchar(255);not null"`
	ContactInfo       string         `gorm:"type:varchar(255);not null"`
	Details           string         `gorm:"type:text;not null"`
	PreferredDate     *string        `gorm:"type:varchar(64)"`
	Status            string         `gorm:"type:varchar(32);not null;index"`
	ConfirmedSchedule *string        `gorm:"type:varchar(128)"`
	AdminNotes        *string        `gorm:"type:text"`
	SubmissionDate    datatypes.Date `gorm:"not null"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
