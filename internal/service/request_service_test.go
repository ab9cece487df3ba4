package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parish-be/internal/dto"
	"parish-be/internal/entity"
	"parish-be/internal/model"
	"parish-be/internal/pkg/apperror"
	"parish-be/internal/repository/specification"
	"parish-be/internal/repository/unitofwork"
)

// newTestFactory opens a named in-memory sqlite database shared across
// connections, so transactional and plain sessions see the same data.
func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ServiceRequest{},
		&model.SacramentRecord{},
		&model.IssuedCertificate{},
		&model.MassSchedule{},
		&model.ScheduleNote{},
		&model.Announcement{},
		&model.Donation{},
	))

	return unitofwork.NewRepositoryFactory(db)
}

func submitBaptismRequest(t *testing.T, svc IRequestService) *dto.ServiceRequestResponse {
	t.Helper()

	preferred := "2023-12-10"
	res, err := svc.Submit(context.Background(), &dto.SubmitRequestRequest{
		Category:      "SACRAMENT",
		ServiceType:   "Baptism",
		RequesterName: "Ana Smith",
		ContactInfo:   "09171234567",
		Details:       "Child: Baby Boy Smith. We are available on Sunday mornings.",
		PreferredDate: &preferred,
	})
	require.NoError(t, err)
	return res
}

func TestSubmitRequest(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)

	res := submitBaptismRequest(t, svc)

	assert.Equal(t, "PENDING", res.Status)
	assert.Equal(t, "SACRAMENT", res.Category)
	assert.Equal(t, time.Now().Format("2006-01-02"), res.SubmissionDate)

	shown, err := svc.Show(context.Background(), res.Id)
	require.NoError(t, err)
	assert.Equal(t, res.Id, shown.Id)
	assert.Equal(t, "Ana Smith", shown.RequesterName)
}

func TestUpdateStatusCompletingSacramentCreatesRecord(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res := submitBaptismRequest(t, svc)
	schedule := "2023-12-10 10:00 AM"

	updated, err := svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{
		Id:                res.Id,
		Status:            "COMPLETED",
		ConfirmedSchedule: &schedule,
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)

	uow := factory.NewUnitOfWork(ctx)
	records, err := uow.RecordRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "Ana Smith", record.Name)
	assert.Equal(t, entity.SacramentTypeBaptism, record.Type)
	assert.Equal(t, "Parish Priest", record.Officiant)
	assert.Equal(t, "2023-12-10", record.Date.Format("2006-01-02"))
	assert.Contains(t, record.Details, res.Id.String())
	assert.False(t, record.IsArchived)
}

func TestUpdateStatusCompletedTwiceCreatesOneRecord(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res := submitBaptismRequest(t, svc)

	_, err := svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: res.Id, Status: "COMPLETED"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: res.Id, Status: "COMPLETED"})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.RecordRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateStatusReopenAndCompleteAgainCreatesSecondRecord(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res := submitBaptismRequest(t, svc)

	for _, status := range []string{"COMPLETED", "APPROVED", "COMPLETED"} {
		_, err := svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: res.Id, Status: status})
		require.NoError(t, err)
	}

	// The guard is per transition, not per lifetime: leaving COMPLETED and
	// coming back produces a fresh record.
	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.RecordRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUpdateStatusCertificateCategoryCreatesNoRecord(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res, err := svc.Submit(ctx, &dto.SubmitRequestRequest{
		Category:      "CERTIFICATE",
		ServiceType:   "Baptismal Certificate",
		RequesterName: "Juan Dela Cruz",
		ContactInfo:   "juan@email.com",
		Details:       "For local employment purposes. Baptized year 1998.",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: res.Id, Status: "COMPLETED"})
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.RecordRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUpdateStatusUnmappableServiceTypeCreatesNoRecord(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res, err := svc.Submit(ctx, &dto.SubmitRequestRequest{
		Category:      "SACRAMENT",
		ServiceType:   "House Blessing",
		RequesterName: "Pedro Reyes",
		ContactInfo:   "pedro@email.com",
		Details:       "New house in the subdivision.",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: res.Id, Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", updated.Status)

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.RecordRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUpdateStatusPreservesAuxiliaryFields(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res := submitBaptismRequest(t, svc)
	schedule := "2023-12-10 10:00 AM"
	notes := "Requirements submitted."

	_, err := svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{
		Id:                res.Id,
		Status:            "SCHEDULED",
		ConfirmedSchedule: &schedule,
		AdminNotes:        &notes,
	})
	require.NoError(t, err)

	// A later change that omits the auxiliary fields must not wipe them.
	updated, err := svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: res.Id, Status: "COMPLETED"})
	require.NoError(t, err)

	require.NotNil(t, updated.ConfirmedSchedule)
	assert.Equal(t, schedule, *updated.ConfirmedSchedule)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, notes, *updated.AdminNotes)
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)

	_, err := svc.UpdateStatus(context.Background(), &dto.UpdateRequestStatusRequest{
		Id:     uuid.New(),
		Status: "APPROVED",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestListRequestsFilters(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	baptism := submitBaptismRequest(t, svc)
	cert, err := svc.Submit(ctx, &dto.SubmitRequestRequest{
		Category:      "CERTIFICATE",
		ServiceType:   "Confirmation Certificate",
		RequesterName: "Sofia Garcia",
		ContactInfo:   "sofia@email.com",
		Details:       "Needed for school enrollment.",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, &dto.UpdateRequestStatusRequest{Id: baptism.Id, Status: "APPROVED"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := svc.List(ctx, "APPROVED", "")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, baptism.Id, approved[0].Id)

	certificates, err := svc.List(ctx, "", "CERTIFICATE")
	require.NoError(t, err)
	require.Len(t, certificates, 1)
	assert.Equal(t, cert.Id, certificates[0].Id)
}

func TestDeleteRequest(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewRequestService(factory, nil)
	ctx := context.Background()

	res := submitBaptismRequest(t, svc)

	require.NoError(t, svc.Delete(ctx, res.Id))

	_, err := svc.Show(ctx, res.Id)
	assert.True(t, apperror.IsNotFound(err))

	assert.True(t, apperror.IsNotFound(svc.Delete(ctx, res.Id)))
}

func TestRequestRepositoryFindOneMissing(t *testing.T) {
	factory := newTestFactory(t)
	uow := factory.NewUnitOfWork(context.Background())

	request, err := uow.RequestRepository().FindOne(context.Background(), specification.ByID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, request)
}
