package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
)

func createTestRecord(t *testing.T, svc IRecordService, name string) *dto.SacramentRecordResponse {
	t.Helper()

	res, err := svc.Create(context.Background(), &dto.CreateRecordRequest{
		Name:      name,
		Date:      "2023-10-15",
		Type:      "BAPTISM",
		Officiant: "Fr. Juan Dela Cruz",
		Details:   "Parents: Jose & Ana Santos",
	})
	require.NoError(t, err)
	return res
}

func TestRecordCrud(t *testing.T) {
	svc := NewRecordService(newTestFactory(t))
	ctx := context.Background()

	created := createTestRecord(t, svc, "Maria Santos")
	assert.Equal(t, "2023-10-15", created.Date)
	assert.False(t, created.IsArchived)

	updated, err := svc.Update(ctx, &dto.UpdateRecordRequest{
		Id:        created.Id,
		Name:      "Maria Santos",
		Date:      "2023-10-16",
		Type:      "BAPTISM",
		Officiant: "Fr. Pedro Gomez",
		Details:   "Corrected officiant",
	})
	require.NoError(t, err)
	assert.Equal(t, "2023-10-16", updated.Date)
	assert.Equal(t, "Fr. Pedro Gomez", updated.Officiant)

	require.NoError(t, svc.Delete(ctx, created.Id))

	_, err = svc.Show(ctx, created.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRecordCreateRejectsBadDate(t *testing.T) {
	svc := NewRecordService(newTestFactory(t))

	_, err := svc.Create(context.Background(), &dto.CreateRecordRequest{
		Name:      "Maria Santos",
		Date:      "15/10/2023",
		Type:      "BAPTISM",
		Officiant: "Fr. Juan Dela Cruz",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestRecordArchiveCycle(t *testing.T) {
	svc := NewRecordService(newTestFactory(t))
	ctx := context.Background()

	keep := createTestRecord(t, svc, "Maria Santos")
	toArchive := createTestRecord(t, svc, "Sofia Garcia")

	archived, err := svc.Archive(ctx, &dto.ArchiveRecordRequest{
		Id:         toArchive.Id,
		ArchivedBy: "admin",
		Reason:     "Duplicate entry",
	})
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
	require.NotNil(t, archived.ArchivedBy)
	assert.Equal(t, "admin", *archived.ArchivedBy)
	require.NotNil(t, archived.ArchiveReason)
	assert.Equal(t, "Duplicate entry", *archived.ArchiveReason)
	assert.NotNil(t, archived.ArchivedAt)

	// Default listing hides archived rows.
	active, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.Id, active[0].Id)

	all, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	restored, err := svc.Unarchive(ctx, toArchive.Id)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
	assert.Nil(t, restored.ArchivedAt)
	assert.Nil(t, restored.ArchivedBy)
	assert.Nil(t, restored.ArchiveReason)

	active, err = svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestRecordListTypeFilter(t *testing.T) {
	svc := NewRecordService(newTestFactory(t))
	ctx := context.Background()

	createTestRecord(t, svc, "Maria Santos")
	_, err := svc.Create(ctx, &dto.CreateRecordRequest{
		Name:      "Pedro & Elena Reyes",
		Date:      "2023-11-02",
		Type:      "MARRIAGE",
		Officiant: "Fr. Juan Dela Cruz",
		Details:   "Witnesses: Mr. & Mrs. Gomez",
	})
	require.NoError(t, err)

	marriages, err := svc.List(ctx, "MARRIAGE", false)
	require.NoError(t, err)
	require.Len(t, marriages, 1)
	assert.Equal(t, "Pedro & Elena Reyes", marriages[0].Name)
}

func TestRecordArchiveUnknownId(t *testing.T) {
	svc := NewRecordService(newTestFactory(t))

	_, err := svc.Archive(context.Background(), &dto.ArchiveRecordRequest{
		Id:         uuid.New(),
		ArchivedBy: "admin",
	})
	assert.True(t, apperror.IsNotFound(err))
}
