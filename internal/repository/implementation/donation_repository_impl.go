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

type DonationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationRepository(db *gorm.DB) contract.DonationRepository {
	return &DonationRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DonationRepositoryImpl) Create(ctx context.Context, donation *entity.Donation) error {
	m := r.mapper.ToModel(donation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*donation = *r.mapper.ToEntity(m)
	return nil
}

func (r *DonationRepositoryImpl) Update(ctx context.Context, donation *entity.Donation) error {
	m := r.mapper.ToModel(donation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*donation = *r.mapper.ToEntity(m)
	return nil
}

func (r *DonationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Donation{}, "id = ?", id).Error
}

func (r *DonationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Donation, error) {
	var m model.Donation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DonationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Donation, error) {
	var models []*model.Donation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
