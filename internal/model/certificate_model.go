package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IssuedCertificate struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type           string    `gorm:"type:varchar(255);not null"`
	RecipientName  string    `gorm:"type:varchar(255);not null"`
	RequesterName  string    `gorm:"type:varchar(255);not null"`
	DateIssued     datatypes.Date
	IssuedBy       string  `gorm:"type:varchar(255);not null"`
	DeliveryMethod string  `gorm:"type:varchar(32);not null"`
	Notes          *string `gorm:"type:text"`
	Status         string  `gorm:"type:varchar(32);not null;index"`
	FileData       []byte
	FileName       *string `gorm:"type:varchar(255)"`
	FileMimeType   *string `gorm:"type:varchar(128)"`
	FileSize       *int64
	UploadedAt     *time.Time
	UploadedBy     *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (IssuedCertificate) TableName() string {
	return "issued_certificates"
}
