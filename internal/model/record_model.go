package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SacramentRecord struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Date          datatypes.Date `gorm:"not null;index"`
	Type          string         `gorm:"type:varchar(32);not null;index"`
	Officiant     string         `gorm:"type:varchar(255);not null"`
	Details       string         `gorm:"type:text"`
	IsArchived    bool           `gorm:"not null;default:false;index"`
	ArchivedAt    *time.Time
	ArchivedBy    *string   `gorm:"type:varchar(255)"`
	ArchiveReason *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (SacramentRecord) TableName() string {
	return "sacrament_records"
}
