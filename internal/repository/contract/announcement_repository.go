package contract

import (
	"context"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Announcement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Announcement, error)
}
