package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"venuebooking/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	venues         domain.VenueRegistry
	catalog        *domain.SlotCatalog
	checker        domain.ConflictChecker
	now            func() time.Time
	contextTimeout time.Duration
}

func NewBookingService(bookingRepo domain.BookingRepository,
	venues domain.VenueRegistry,
	catalog *domain.SlotCatalog,
	checker domain.ConflictChecker,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		venues:         venues,
		catalog:        catalog,
		checker:        checker,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

// CreateBooking validates in, refuses it if any requested slot is taken, and persists it.
// It never books a subset of the requested slots.
func (s *bookingService) CreateBooking(ctx context.Context, in domain.BookingInput) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	in, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, in, ""); err != nil {
		return nil, err
	}

	now := s.now()
	booking := domain.NewBooking(in, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, storeError("create booking", err)
	}
	return booking, nil
}

// EditBooking replaces the venue, date, slots and details of an existing booking.
// The booking's own current slots never count as a conflict.
func (s *bookingService) EditBooking(ctx context.Context, id string, in domain.BookingInput) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get booking", err)
	}
	in, err = s.validate(in)
	if err != nil {
		return nil, err
	}
	in.RequesterID = existing.RequesterID
	if err := s.ensureFree(ctx, in, existing.ID); err != nil {
		return nil, err
	}

	booking := domain.NewBooking(in, existing.CreatedAt, s.now())
	booking.ID = existing.ID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, storeError("update booking", err)
	}
	return booking, nil
}

// CancelBooking deletes the booking. Cancelling an unknown or already cancelled id
// returns ErrNotFound.
func (s *bookingService) CancelBooking(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return storeError("delete booking", err)
	}
	return nil
}

func (s *bookingService) CheckConflict(ctx context.Context, venueID string, date domain.Date, slots []string, excludeBookingID string) (domain.ConflictResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var problems []string
	if _, err := s.venues.Get(venueID); err != nil {
		problems = append(problems, fmt.Sprintf("unknown venue %q", venueID))
	}
	if date.IsZero() {
		problems = append(problems, "date is required")
	}
	problems = append(problems, s.slotProblems(slots)...)
	if len(problems) > 0 {
		return domain.ConflictResult{}, domain.NewValidationError(problems...)
	}
	return s.checker.Check(ctx, venueID, date, domain.UniqueSlots(slots), excludeBookingID)
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get booking", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, venueID string, from, to domain.Date) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if from.IsZero() || to.IsZero() {
		return nil, domain.NewValidationError("from and to are required")
	}
	if to.Before(from) {
		return nil, domain.NewValidationError("to must not be before from")
	}
	bookings, err := s.bookingRepo.List(ctx, venueID, from, to)
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) ListMyBookings(ctx context.Context, requesterID string, page domain.PaginationParams) ([]*domain.Booking, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	bookings, total, err := s.bookingRepo.ListByRequester(ctx, requesterID, page)
	if err != nil {
		return nil, 0, storeError("list bookings by requester", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, total, nil
}

// MonthGrid rebuilds the month view from a fresh listing of the visible weeks.
func (s *bookingService) MonthGrid(ctx context.Context, venueID string, year int, month time.Month) ([]domain.DayCell, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkVenueFilter(venueID); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid month %d", month))
	}
	from, to := monthGridBounds(year, month)
	bookings, err := s.bookingRepo.List(ctx, venueID, from, to)
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return BuildMonthGrid(year, month, venueID, bookings, s.today()), nil
}

// WeekGrid rebuilds the week view from a fresh listing of the week.
func (s *bookingService) WeekGrid(ctx context.Context, venueID string, weekStart domain.Date) (*domain.WeekGrid, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkVenueFilter(venueID); err != nil {
		return nil, err
	}
	if weekStart.IsZero() {
		return nil, domain.NewValidationError("week start is required")
	}
	start := weekStart.StartOfWeek()
	bookings, err := s.bookingRepo.List(ctx, venueID, start, start.AddDays(6))
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return BuildWeekGrid(start, s.catalog, venueID, bookings, s.today()), nil
}

func (s *bookingService) Slots() []domain.Slot {
	return s.catalog.Slots()
}

func (s *bookingService) today() domain.Date {
	return domain.DateOf(s.now())
}

// ensureFree turns a positive conflict check into a SlotConflictError.
func (s *bookingService) ensureFree(ctx context.Context, in domain.BookingInput, excludeID string) error {
	result, err := s.checker.Check(ctx, in.VenueID, in.Date, in.Slots, excludeID)
	if err != nil {
		return err
	}
	if result.Conflicting {
		return &domain.SlotConflictError{Slots: result.ConflictingSlots}
	}
	return nil
}

// validate normalizes in and reports every rule it breaks in one ValidationError.
func (s *bookingService) validate(in domain.BookingInput) (domain.BookingInput, error) {
	var problems []string

	in.VenueID = strings.TrimSpace(in.VenueID)
	in.Purpose = strings.TrimSpace(in.Purpose)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)

	var venue *domain.Venue
	if in.VenueID == "" {
		problems = append(problems, "venue_id is required")
	} else if v, err := s.venues.Get(in.VenueID); err != nil {
		problems = append(problems, fmt.Sprintf("unknown venue %q", in.VenueID))
	} else {
		venue = v
	}

	if in.Attendees < 1 {
		problems = append(problems, "attendees must be at least 1")
	} else if venue != nil && in.Attendees > venue.Capacity {
		problems = append(problems, fmt.Sprintf("attendees %d exceed capacity %d of venue %s", in.Attendees, venue.Capacity, venue.ID))
	}

	if in.Purpose == "" {
		problems = append(problems, "purpose is required")
	}

	problems = append(problems, s.slotProblems(in.Slots)...)
	in.Slots = domain.UniqueSlots(in.Slots)

	if in.Date.IsZero() {
		problems = append(problems, "date is required")
	} else if in.Date.Before(s.today()) {
		problems = append(problems, fmt.Sprintf("date %s is in the past", in.Date))
	}

	if len(problems) > 0 {
		return in, domain.NewValidationError(problems...)
	}
	return in, nil
}

func (s *bookingService) slotProblems(slots []string) []string {
	if len(slots) == 0 {
		return []string{"at least one slot is required"}
	}
	var problems []string
	for _, label := range domain.UniqueSlots(slots) {
		if !s.catalog.Contains(label) {
			problems = append(problems, fmt.Sprintf("unknown slot %q", label))
		}
	}
	return problems
}

func (s *bookingService) checkVenueFilter(venueID string) error {
	if venueID == "" {
		return nil
	}
	if _, err := s.venues.Get(venueID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError(fmt.Sprintf("unknown venue %q", venueID))
		}
		return err
	}
	return nil
}
