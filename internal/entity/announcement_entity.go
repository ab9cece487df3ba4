package entity

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Date      time.Time
	IsPublic  bool
	ImageUrl  *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
