package dto

import (
	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	Day         string `json:"day" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

type UpdateScheduleRequest struct {
	Id          uuid.UUID `json:"-"`
	Day         string    `json:"day" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
}

type MassScheduleResponse struct {
	Id          uuid.UUID `json:"id"`
	Day         string    `json:"day"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

type UpsertScheduleNoteRequest struct {
	Title       string  `json:"title" validate:"required"`
	Body        string  `json:"body" validate:"required"`
	ActionLabel *string `json:"action_label"`
	ActionLink  *string `json:"action_link"`
}

type ScheduleNoteResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ActionLabel *string   `json:"action_label,omitempty"`
	ActionLink  *string   `json:"action_link,omitempty"`
}
