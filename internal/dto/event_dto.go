package dto

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatusChangedEvent is published after a status transition commits.
// The notifier consumes it to inform the requester.
type RequestStatusChangedEvent struct {
	RequestId         uuid.UUID `json:"request_id"`
	RequesterName     string    `json:"requester_name"`
	ContactInfo       string    `json:"contact_info"`
	ServiceType       string    `json:"service_type"`
	PreviousStatus    string    `json:"previous_status"`
	NewStatus         string    `json:"new_status"`
	ConfirmedSchedule *string   `json:"confirmed_schedule,omitempty"`
	AdminNotes        *string   `json:"admin_notes,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}
