package contract

import (
	"context"

	"github.com/google/uuid"

	"parish-be/internal/entity"
	"parish-be/internal/repository/specification"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.MassSchedule) error
	Update(ctx context.Context, schedule *entity.MassSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MassSchedule, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MassSchedule, error)

	// Schedule note: the most recently updated row is authoritative.
	FindLatestNote(ctx context.Context) (*entity.ScheduleNote, error)
	CreateNote(ctx context.Context, note *entity.ScheduleNote) error
	UpdateNote(ctx context.Context, note *entity.ScheduleNote) error
}
