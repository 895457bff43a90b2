package services

import (
	"context"
	"errors"
	"testing"

	"venuebooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictChecker_Check(t *testing.T) {
	date := domain.NewDate(2026, 10, 20)
	seed := func() *fakeBookingRepo {
		repo := newFakeBookingRepo()
		repo.bookings["bk-1"] = &domain.Booking{ID: "bk-1", VenueID: "D24", Date: date, Slots: []string{"09:00-10:00", "10:00-11:00"}}
		repo.bookings["bk-2"] = &domain.Booking{ID: "bk-2", VenueID: "D24", Date: date, Slots: []string{"14:00-15:00"}}
		repo.bookings["bk-3"] = &domain.Booking{ID: "bk-3", VenueID: "B12", Date: date, Slots: []string{"11:00-12:00"}}
		return repo
	}

	tests := []struct {
		name       string
		venueID    string
		candidates []string
		exclude    string
		want       domain.ConflictResult
	}{
		{
			name:       "no overlap",
			venueID:    "D24",
			candidates: []string{"11:00-12:00", "12:00-13:00"},
			want:       domain.ConflictResult{Conflicting: false},
		},
		{
			name:       "overlap with one booking",
			venueID:    "D24",
			candidates: []string{"10:00-11:00", "11:00-12:00"},
			want:       domain.ConflictResult{Conflicting: true, ConflictingSlots: []string{"10:00-11:00"}},
		},
		{
			name:       "non-contiguous overlap across bookings keeps candidate order",
			venueID:    "D24",
			candidates: []string{"14:00-15:00", "08:00-09:00", "09:00-10:00"},
			want:       domain.ConflictResult{Conflicting: true, ConflictingSlots: []string{"14:00-15:00", "09:00-10:00"}},
		},
		{
			name:       "own claim excluded",
			venueID:    "D24",
			candidates: []string{"09:00-10:00", "10:00-11:00"},
			exclude:    "bk-1",
			want:       domain.ConflictResult{Conflicting: false},
		},
		{
			name:       "exclusion is by id only",
			venueID:    "D24",
			candidates: []string{"09:00-10:00", "14:00-15:00"},
			exclude:    "bk-1",
			want:       domain.ConflictResult{Conflicting: true, ConflictingSlots: []string{"14:00-15:00"}},
		},
		{
			name:       "other venue is independent",
			venueID:    "B12",
			candidates: []string{"09:00-10:00"},
			want:       domain.ConflictResult{Conflicting: false},
		},
		{
			name:       "repeated candidates reported once",
			venueID:    "B12",
			candidates: []string{"11:00-12:00", "11:00-12:00"},
			want:       domain.ConflictResult{Conflicting: true, ConflictingSlots: []string{"11:00-12:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewConflictChecker(seed())
			got, err := checker.Check(context.Background(), tt.venueID, date, tt.candidates, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflictChecker_Check_Errors(t *testing.T) {
	repo := newFakeBookingRepo()
	checker := NewConflictChecker(repo)
	date := domain.NewDate(2026, 10, 20)

	_, err := checker.Check(context.Background(), "D24", date, nil, "")
	require.ErrorIs(t, err, domain.ErrValidation)

	repo.listErr = errors.New("dial tcp: connection refused")
	_, err = checker.Check(context.Background(), "D24", date, []string{"09:00-10:00"}, "")
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStoreError(t *testing.T) {
	assert.Equal(t, domain.ErrNotFound, storeError("get", domain.ErrNotFound))

	conflict := &domain.SlotConflictError{Slots: []string{"09:00-10:00"}}
	assert.Equal(t, error(conflict), storeError("create", conflict))

	err := storeError("list", errors.New("boom"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.EqualError(t, err, "list: booking store unavailable: boom")
}
