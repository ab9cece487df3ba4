package contract

import (
	"context"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	Update(ctx context.Context, request *entity.ServiceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
