package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueCertificateRequest struct {
	Id             uuid.UUID `json:"-"` // originating request id, from the path
	DeliveryMethod string    `json:"delivery_method" validate:"required,oneof=PICKUP EMAIL COURIER"`
	Notes          string    `json:"notes"`
	IssuedBy       string    `json:"issued_by" validate:"required"`
}

type UploadCertificateFileRequest struct {
	Id       uuid.UUID
	Data     []byte
	FileName string
	Size     int64
	// UploadedBy comes from the JWT claims, not the form.
	UploadedBy string
}

type CertificateFileResponse struct {
	Data     []byte
	FileName string
	MimeType string
}

type IssuedCertificateResponse struct {
	Id                  uuid.UUID  `json:"id"`
	RequestId           uuid.UUID  `json:"request_id"`
	Type                string     `json:"type"`
	RecipientName       string     `json:"recipient_name"`
	RequesterName       string     `json:"requester_name"`
	DateIssued          string     `json:"date_issued"`
	IssuedBy            string     `json:"issued_by"`
	DeliveryMethod      string     `json:"delivery_method"`
	Notes               *string    `json:"notes,omitempty"`
	Status              string     `json:"status"`
	FileName            *string    `json:"file_name,omitempty"`
	FileMimeType        *string    `json:"file_mime_type,omitempty"`
	FileSize            *int64     `json:"file_size,omitempty"`
	UploadedAt          *time.Time `json:"uploaded_at,omitempty"`
	UploadedBy          *string    `json:"uploaded_by,omitempty"`
	NeedsUploadReminder bool       `json:"needs_upload_reminder"`
}
