package entity

import (
	"time"

	"github.com/google/uuid"
)

type MassSchedule struct {
	Id          uuid.UUID
	Day         string
	Time        string
	Description string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ScheduleNote is the banner note shown above the public schedule list.
// The latest row wins; PUT upserts it.
type ScheduleNote struct {
	Id          uuid.UUID
	Title       string
	Body        string
	ActionLabel *string
	ActionLink  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
