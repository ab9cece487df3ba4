package entity

import (
	"time"

	"github.com/google/uuid"
)

// SacramentRecord documents that a sacrament occurred. Created manually by an
// admin or synthesized when a SACRAMENT-category request completes; after
// creation it has no link back to the originating request beyond free text
// in Details.
type SacramentRecord struct {
	Id            uuid.UUID
	Name          string
	Date          time.Time
	Type          SacramentType
	Officiant     string
	Details       string
	IsArchived    bool
	ArchivedAt    *time.Time
	ArchivedBy    *string
	ArchiveReason *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
