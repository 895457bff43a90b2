package domain

import (
	"context"
	"time"
)

// Booking is a claim on one or more slots of one venue on one date.
// swagger:model Booking
type Booking struct {
	ID           string    `json:"id"`
	VenueID      string    `json:"venue_id"`
	Date         Date      `json:"date" swaggertype:"string" example:"2026-10-20"`
	Slots        []string  `json:"slots"`
	Attendees    int       `json:"attendees"`
	Purpose      string    `json:"purpose"`
	RequesterID  string    `json:"requester_id"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingInput is the caller-supplied part of a booking for create and edit.
type BookingInput struct {
	VenueID      string
	Date         Date
	Slots        []string
	Attendees    int
	Purpose      string
	RequesterID  string
	ContactEmail string
}

// NewBooking returns a new Booking from input. ID is typically set by the repository on create.
func NewBooking(in BookingInput, createdAt, updatedAt time.Time) *Booking {
	slots := make([]string, len(in.Slots))
	copy(slots, in.Slots)
	return &Booking{
		VenueID:      in.VenueID,
		Date:         in.Date,
		Slots:        slots,
		Attendees:    in.Attendees,
		Purpose:      in.Purpose,
		RequesterID:  in.RequesterID,
		ContactEmail: in.ContactEmail,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// ConflictResult reports whether candidate slots collide with existing bookings.
// swagger:model ConflictResult
type ConflictResult struct {
	Conflicting      bool     `json:"conflicting"`
	ConflictingSlots []string `json:"conflicting_slots,omitempty"`
}

// BookingRepository is the persistence port for bookings.
// Create and Update re-check the (venue, date) slot claims atomically with the write
// and return *SlotConflictError when another booking got there first.
type BookingRepository interface {
	// List returns bookings with from <= date <= to. An empty venueID matches every venue.
	List(ctx context.Context, venueID string, from, to Date) ([]*Booking, error)
	ListByRequester(ctx context.Context, requesterID string, page PaginationParams) ([]*Booking, int, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error
}

// ConflictChecker decides whether candidate slots are free on a venue/date.
type ConflictChecker interface {
	Check(ctx context.Context, venueID string, date Date, candidates []string, excludeBookingID string) (ConflictResult, error)
}

// BookingService orchestrates the booking lifecycle and the calendar read models.
type BookingService interface {
	CreateBooking(ctx context.Context, in BookingInput) (*Booking, error)
	EditBooking(ctx context.Context, id string, in BookingInput) (*Booking, error)
	CancelBooking(ctx context.Context, id string) error
	CheckConflict(ctx context.Context, venueID string, date Date, slots []string, excludeBookingID string) (ConflictResult, error)
	GetBooking(ctx context.Context, id string) (*Booking, error)
	ListBookings(ctx context.Context, venueID string, from, to Date) ([]*Booking, error)
	ListMyBookings(ctx context.Context, requesterID string, page PaginationParams) ([]*Booking, int, error)
	MonthGrid(ctx context.Context, venueID string, year int, month time.Month) ([]DayCell, error)
	WeekGrid(ctx context.Context, venueID string, weekStart Date) (*WeekGrid, error)
	Slots() []Slot
}
