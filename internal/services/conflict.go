package services

import (
	"context"
	"errors"
	"fmt"

	"venuebooking/internal/domain"
)

type conflictChecker struct {
	bookingRepo domain.BookingRepository
}

// NewConflictChecker returns a checker that reads the current bookings from repo on every call.
func NewConflictChecker(repo domain.BookingRepository) domain.ConflictChecker {
	return &conflictChecker{bookingRepo: repo}
}

// Check intersects candidates with the slots claimed by every other booking on venueID/date.
// The result is a snapshot; nothing is locked between Check and a later write.
func (c *conflictChecker) Check(ctx context.Context, venueID string, date domain.Date, candidates []string, excludeBookingID string) (domain.ConflictResult, error) {
	if len(candidates) == 0 {
		return domain.ConflictResult{}, domain.NewValidationError("at least one slot is required")
	}
	existing, err := c.bookingRepo.List(ctx, venueID, date, date)
	if err != nil {
		return domain.ConflictResult{}, storeError("list bookings", err)
	}

	claimed := make([]string, 0)
	for _, b := range existing {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if b.VenueID != venueID || b.Date != date {
			continue
		}
		claimed = append(claimed, b.Slots...)
	}
	overlap := domain.IntersectSlots(claimed, candidates)
	if len(overlap) == 0 {
		return domain.ConflictResult{Conflicting: false}, nil
	}
	return domain.ConflictResult{Conflicting: true, ConflictingSlots: overlap}, nil
}

// storeError classifies a repository failure. Not-found and slot conflicts pass
// through; anything else is reported as ErrStoreUnavailable.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrSlotConflict) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
