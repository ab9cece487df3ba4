package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Announcement struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text;not null"`
	Date      datatypes.Date `gorm:"not null;index"`
	// No column default: gorm drops zero-value fields carrying one on
	// insert, which would overwrite an explicit false. The service layer
	// defaults omitted values instead.
	IsPublic  bool           `gorm:"not null"`
	ImageUrl  *string        `gorm:"type:varchar(512)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Announcement) TableName() string {
	return "announcements"
}
