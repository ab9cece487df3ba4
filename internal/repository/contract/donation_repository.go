package contract

import (
	"context"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	Update(ctx context.Context, donation *entity.Donation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Donation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Donation, error)
}
