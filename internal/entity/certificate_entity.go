package entity

import (
	"time"

	"github.com/google/uuid"
)

// IssuedCertificate records a document produced for a requester. The request
// it references may be deleted independently. Status UPLOADED implies the
// file fields are populated.
type IssuedCertificate struct {
	Id             uuid.UUID
	RequestId      uuid.UUID
	Type           string
	RecipientName  string
	RequesterName  string
	DateIssued     time.Time
	IssuedBy       string
	DeliveryMethod DeliveryMethod
	Notes          *string
	Status         CertificateStatus
	FileData       []byte
	FileName       *string
	FileMimeType   *string
	FileSize       *int64
	UploadedAt     *time.Time
	UploadedBy     *string
	CreatedAt      time.Time
}
