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

type CertificateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CertificateMapper
}

func NewCertificateRepository(db *gorm.DB) contract.CertificateRepository {
	return &CertificateRepositoryImpl{
		db:     db,
		mapper: mapper.NewCertificateMapper(),
	}
}

func (r *CertificateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CertificateRepositoryImpl) Create(ctx context.Context, cert *entity.IssuedCertificate) error {
	m := r.mapper.ToModel(cert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*cert = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificateRepositoryImpl) Update(ctx context.Context, cert *entity.IssuedCertificate) error {
	m := r.mapper.ToModel(cert)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*cert = *r.mapper.ToEntity(m)
	return nil
}

func (r *CertificateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IssuedCertificate{}, "id = ?", id).Error
}

func (r *CertificateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IssuedCertificate, error) {
	var m model.IssuedCertificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CertificateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IssuedCertificate, error) {
	var models []*model.IssuedCertificate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CertificateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.IssuedCertificate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
