package contract

import (
	"context"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
)

type CertificateRepository interface {
	Create(ctx context.Context, cert *entity.IssuedCertificate) error
	Update(ctx context.Context, cert *entity.IssuedCertificate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IssuedCertificate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IssuedCertificate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
