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

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnnouncementMapper
}

func NewAnnouncementRepository(db *gorm.DB) contract.AnnouncementRepository {
	return &AnnouncementRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnnouncementMapper(),
	}
}

func (r *AnnouncementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, announcement *entity.Announcement) error {
	m := r.mapper.ToModel(announcement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*announcement = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, announcement *entity.Announcement) error {
	m := r.mapper.ToModel(announcement)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*announcement = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Announcement{}, "id = ?", id).Error
}

func (r *AnnouncementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Announcement, error) {
	var m model.Announcement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnnouncementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Announcement, error) {
	var models []*model.Announcement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
