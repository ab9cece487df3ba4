package dto

import (
	"github.com/google/uuid"
)

type SubmitRequestRequest struct {
	Category      string  `json:"category" validate:"required,oneof=SACRAMENT CERTIFICATE"`
	ServiceType   string  `json:"service_type" validate:"required"`
	RequesterName string  `json:"requester_name" validate:"required"`
	ContactInfo   string  `json:"contact_info" validate:"required"`
	Details       string  `json:"details" validate:"required"`
	PreferredDate *string `json:"preferred_date"`
}

// UpdateRequestStatusRequest carries a status change plus the auxiliary
// fields the admin modal may set alongside it. A malformed status never
// reaches the service layer; the oneof tag rejects it at the boundary.
type UpdateRequestStatusRequest struct {
	Id                uuid.UUID `json:"-"`
	Status            string    `json:"status" validate:"required,oneof=PENDING APPROVED SCHEDULED COMPLETED REJECTED"`
	ConfirmedSchedule *string   `json:"confirmed_schedule"`
	AdminNotes        *string   `json:"admin_notes"`
}

type ServiceRequestResponse struct {
	Id                uuid.UUID `json:"id"`
	Category          string    `json:"category"`
	ServiceType       string    `json:"service_type"`
	RequesterName     string    `json:"requester_name"`
	ContactInfo       string    `json:"contact_info"`
	Details           string    `json:"details"`
	PreferredDate     *string   `json:"preferred_date,omitempty"`
	Status            string    `json:"status"`
	ConfirmedSchedule *string   `json:"confirmed_schedule,omitempty"`
	AdminNotes        *string   `json:"admin_notes,omitempty"`
	SubmissionDate    string    `json:"submission_date"`
}
