package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"parish-be/internal/repository/contract"
	"parish-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RequestRepository() contract.RequestRepository {
	return implementation.NewRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RecordRepository() contract.RecordRepository {
	return implementation.NewRecordRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CertificateRepository() contract.CertificateRepository {
	return implementation.NewCertificateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScheduleRepository() contract.ScheduleRepository {
	return implementation.NewScheduleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AnnouncementRepository() contract.AnnouncementRepository {
	return implementation.NewAnnouncementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DonationRepository() contract.DonationRepository {
	return implementation.NewDonationRepository(u.getDB())
}
