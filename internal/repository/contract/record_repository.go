package contract

import (
	"context"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
)

type RecordRepository interface {
	Create(ctx context.Context, record *entity.SacramentRecord) error
	Update(ctx context.Context, record *entity.SacramentRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SacramentRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SacramentRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
