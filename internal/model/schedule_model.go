package model

import (
	"time"

	"github.com/google/uuid"
)

type MassSchedule struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day         string    `gorm:"type:varchar(64);not null"`
	Time        string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (MassSchedule) TableName() string {
	return "mass_schedules"
}

type ScheduleNote struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text;not null"`
	ActionLabel *string   `gorm:"type:varchar(128)"`
	ActionLink  *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;index"`
}

func (ScheduleNote) TableName() string {
	return "schedule_notes"
}
