package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donation is a ledger entry. Amount stays free text so in-kind gifts
// ("50 Sacks of Cement") fit alongside currency values.
type Donation struct {
	Id          uuid.UUID
	DonorName   string
	Amount      string
	Purpose     string
	Date        time.Time
	IsAnonymous bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
