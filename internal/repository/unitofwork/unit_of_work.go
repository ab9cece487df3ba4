package unitofwork

import (
	"context"

	"parish-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Begin/Commit/
// Rollback bracket multi-write sequences (status change + derived record,
// certificate insert + request completion) so they land atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RequestRepository() contract.RequestRepository
	RecordRepository() contract.RecordRepository
	CertificateRepository() contract.CertificateRepository
	ScheduleRepository() contract.ScheduleRepository
	AnnouncementRepository() contract.AnnouncementRepository
	DonationRepository() contract.DonationRepository
}
