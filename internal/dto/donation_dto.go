package dto

import (
	"github.com/google/uuid"
)

type CreateDonationRequest struct {
	DonorName   string `json:"donor_name" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Purpose     string `json:"purpose" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	IsAnonymous bool   `json:"is_anonymous"`
}

type UpdateDonationRequest struct {
	Id          uuid.UUID `json:"-"`
	DonorName   string    `json:"donor_name" validate:"required"`
	Amount      string    `json:"amount" validate:"required"`
	Purpose     string    `json:"purpose" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	IsAnonymous bool      `json:"is_anonymous"`
}

type DonationResponse struct {
	Id          uuid.UUID `json:"id"`
	DonorName   string    `json:"donor_name"`
	Amount      string    `json:"amount"`
	Purpose     string    `json:"purpose"`
	Date        string    `json:"date"`
	IsAnonymous bool      `json:"is_anonymous"`
}
