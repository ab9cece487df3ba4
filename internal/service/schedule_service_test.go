package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish-be/internal/dto"
	"parish-be/internal/pkg/apperror"
)

func TestScheduleCrudAndCache(t *testing.T) {
	svc := NewScheduleService(newTestFactory(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateScheduleRequest{
		Day:         "Sunday",
		Time:        "06:00 AM",
		Description: "Misa Pro Populo (Cebuano)",
		Location:    "Main Church",
	})
	require.NoError(t, err)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// Second list comes from cache; a write must evict it.
	_, err = svc.Create(ctx, &dto.CreateScheduleRequest{
		Day:         "Wednesday",
		Time:        "05:30 PM",
		Description: "Novena Mass",
		Location:    "Main Church",
	})
	require.NoError(t, err)

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	updated, err := svc.Update(ctx, &dto.UpdateScheduleRequest{
		Id:          created.Id,
		Day:         "Sunday",
		Time:        "06:30 AM",
		Description: "Misa Pro Populo (Cebuano)",
		Location:    "Main Church",
	})
	require.NoError(t, err)
	assert.Equal(t, "06:30 AM", updated.Time)

	require.NoError(t, svc.Delete(ctx, created.Id))

	listed, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestScheduleNoteUpsert(t *testing.T) {
	svc := NewScheduleService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.GetNote(ctx)
	assert.True(t, apperror.IsNotFound(err))

	first, err := svc.UpsertNote(ctx, &dto.UpsertScheduleNoteRequest{
		Title: "Confession Schedule",
		Body:  "Available every Wednesday after the Novena Mass.",
	})
	require.NoError(t, err)

	label := "Contact Office"
	link := "/contact"
	second, err := svc.UpsertNote(ctx, &dto.UpsertScheduleNoteRequest{
		Title:       "Holy Week Schedule",
		Body:        "Special schedule applies from Palm Sunday onward.",
		ActionLabel: &label,
		ActionLink:  &link,
	})
	require.NoError(t, err)

	// Same row, overwritten.
	assert.Equal(t, first.Id, second.Id)

	note, err := svc.GetNote(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Holy Week Schedule", note.Title)
	require.NotNil(t, note.ActionLabel)
	assert.Equal(t, "Contact Office", *note.ActionLabel)
}
