package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish-be/internal/dto"
)

func TestAnnouncementPublicFilter(t *testing.T) {
	svc := NewAnnouncementService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateAnnouncementRequest{
		Title:   "Parish Fiesta Preparation",
		Content: "Committee meeting this Saturday at 2 PM.",
		Date:    "2023-11-10",
	})
	require.NoError(t, err)

	hidden := false
	draft, err := svc.Create(ctx, &dto.CreateAnnouncementRequest{
		Title:    "Draft: Budget Review",
		Content:  "Internal finance council notes.",
		Date:     "2023-11-11",
		IsPublic: &hidden,
	})
	require.NoError(t, err)
	assert.False(t, draft.IsPublic)

	public, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Parish Fiesta Preparation", public[0].Title)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Publishing the draft must show up on the public list despite the cache.
	visible := true
	_, err = svc.Update(ctx, &dto.UpdateAnnouncementRequest{
		Id:       draft.Id,
		Title:    "Budget Review",
		Content:  "Finance council summary for parishioners.",
		Date:     "2023-11-11",
		IsPublic: &visible,
	})
	require.NoError(t, err)

	public, err = svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, public, 2)
}

func TestDonationAnonymousMasking(t *testing.T) {
	svc := NewDonationService(newTestFactory(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateDonationRequest{
		DonorName:   "Family of Mr. & Mrs. Reyes",
		Amount:      "₱10,000",
		Purpose:     "Church Renovation Fund",
		Date:        "2023-10-01",
		IsAnonymous: false,
	})
	require.NoError(t, err)

	anon, err := svc.Create(ctx, &dto.CreateDonationRequest{
		DonorName:   "Juan Dela Cruz",
		Amount:      "₱2,000",
		Purpose:     "Sunday Collection",
		Date:        "2023-10-05",
		IsAnonymous: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", anon.DonorName)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	// Date desc ordering puts the anonymous gift first.
	assert.Equal(t, "Anonymous", listed[0].DonorName)
	assert.Equal(t, "Family of Mr. & Mrs. Reyes", listed[1].DonorName)
}
