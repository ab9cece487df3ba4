package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parish-be/internal/entity"
	"parish-be/internal/mapper"
	"parish-be/internal/model"
	"parish-be/internal/repository/contract"
	"parish-be/internal/repository/specification"
)

type ScheduleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScheduleMapper
}

func NewScheduleRepository(db *gorm.DB) contract.ScheduleRepository {
	return &ScheduleRepositoryImpl{
		db:     db,
		mapper: mapper.NewScheduleMapper(),
	}
}

func (r *ScheduleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScheduleRepositoryImpl) Create(ctx context.Context, schedule *entity.MassSchedule) error {
	m := r.mapper.ToModel(schedule)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*schedule = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScheduleRepositoryImpl) Update(ctx context.Context, schedule *entity.MassSchedule) error {
	m := r.mapper.ToModel(schedule)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*schedule = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScheduleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MassSchedule{}, "id = ?", id).Error
}

func (r *ScheduleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MassSchedule, error) {
	var m model.MassSchedule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScheduleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MassSchedule, error) {
	var models []*model.MassSchedule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScheduleRepositoryImpl) FindLatestNote(ctx context.Context) (*entity.ScheduleNote, error) {
	var m model.ScheduleNote
	if err := r.db.WithContext(ctx).Order("updated_at DESC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NoteToEntity(&m), nil
}

func (r *ScheduleRepositoryImpl) CreateNote(ctx context.Context, note *entity.ScheduleNote) error {
	m := r.mapper.NoteToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.NoteToEntity(m)
	return nil
}

func (r *ScheduleRepositoryImpl) UpdateNote(ctx context.Context, note *entity.ScheduleNote) error {
	m := r.mapper.NoteToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.NoteToEntity(m)
	return nil
}
