package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Donation struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DonorName   string         `gorm:"type:varchar(255);not null"`
	Amount      string         `gorm:"type:varchar(128);not null"`
	Purpose     string         `gorm:"type:varchar(255);not null"`
	Date        datatypes.Date `gorm:"not null;index"`
	IsAnonymous bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Donation) TableName() string {
	return "donations"
}
