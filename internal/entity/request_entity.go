package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequest is a public submission asking for a sacrament to be
// scheduled or a certificate to be issued. Category never changes after
// creation; status moves only through admin actions.
type ServiceRequest struct {
	Id                uuid.UUID
	Category          RequestCategory
	ServiceType       string
	RequesterName     string
	ContactInfo       string
	Details           string
	PreferredDate     *string
	Status            RequestStatus
	ConfirmedSchedule *string
	AdminNotes        *string
	SubmissionDate    time.Time
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
