package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"parish-be/internal/entity"
)

func TestMapServiceTypeToSacrament(t *testing.T) {
	tests := []struct {
		name        string
		serviceType string
		wantType    entity.SacramentType
		wantMatch   bool
	}{
		{name: "plain baptism", serviceType: "Baptism", wantType: entity.SacramentTypeBaptism, wantMatch: true},
		{name: "case insensitive", serviceType: "INFANT BAPTISM", wantType: entity.SacramentTypeBaptism, wantMatch: true},
		{name: "substring match", serviceType: "Holy Matrimony (Marriage)", wantType: entity.SacramentTypeMarriage, wantMatch: true},
		{name: "confirmation", serviceType: "confirmation rites", wantType: entity.SacramentTypeConfirmation, wantMatch: true},
		{name: "funeral", serviceType: "Funeral Mass", wantType: entity.SacramentTypeFuneral, wantMatch: true},
		{name: "no match", serviceType: "House Blessing", wantMatch: false},
		{name: "empty", serviceType: "", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapServiceTypeToSacrament(tt.serviceType)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantType, got)
			}
		})
	}
}

func TestDeriveRecordDate(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	today := now.Truncate(24 * time.Hour)
	schedule := "2024-06-15 10:00 AM"
	noDash := "sometime soon"
	preferred := "2024-05-01"

	tests := []struct {
		name              string
		confirmedSchedule *string
		preferredDate     *string
		want              time.Time
	}{
		{
			name:              "confirmed schedule wins",
			confirmedSchedule: &schedule,
			preferredDate:     &preferred,
			want:              time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "preferred date fallback",
			preferredDate: &preferred,
			want:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "nothing set falls back to today",
			want: today,
		},
		{
			name:              "schedule without dashes falls back to today",
			confirmedSchedule: &noDash,
			want:              today,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveRecordDate(tt.confirmedSchedule, tt.preferredDate, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveRecipientName(t *testing.T) {
	t.Run("short details pass through", func(t *testing.T) {
		assert.Equal(t, "Carlos Dizon, baptized 1995", deriveRecipientName("Carlos Dizon, baptized 1995"))
	})

	t.Run("long details truncated to 50 runes", func(t *testing.T) {
		long := strings.Repeat("a", 80)
		got := deriveRecipientName(long)
		assert.Equal(t, 50, len([]rune(got)))
	})

	t.Run("truncation counts runes not bytes", func(t *testing.T) {
		long := strings.Repeat("ñ", 60)
		got := deriveRecipientName(long)
		assert.Equal(t, 50, len([]rune(got)))
	})
}

func TestTransitionAllowed(t *testing.T) {
	statuses := []entity.RequestStatus{
		entity.RequestStatusPending,
		entity.RequestStatusApproved,
		entity.RequestStatusScheduled,
		entity.RequestStatusCompleted,
		entity.RequestStatusRejected,
	}

	// Every pair is currently permitted; the table exists so tightening one
	// is a single-line change.
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, transitionAllowed(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, transitionAllowed("BOGUS", entity.RequestStatusPending))
}

func TestBuildGeneratedDetails(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	got := buildGeneratedDetails(id, "Child: Baby Boy Smith")
	assert.Equal(t, "Generated from Request #11111111-2222-3333-4444-555555555555. Details: Child: Baby Boy Smith", got)
}
