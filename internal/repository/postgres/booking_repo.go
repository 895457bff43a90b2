package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"venuebooking/internal/domain"

	"github.com/lib/pq"
)

// invalidTextRepresentation is returned by Postgres when an id is not a valid UUID.
const invalidTextRepresentation = "22P02"

const bookingColumns = `id, venue_id, booking_date, slots, attendees, purpose, requester_id, contact_email, created_at, updated_at`

type bookingRepository struct {
	DB *sql.DB
}

// NewBookingRepository returns a domain.BookingRepository implemented with Postgres.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	var date time.Time
	var slots pq.StringArray
	if err := row.Scan(&b.ID, &b.VenueID, &date, &slots, &b.Attendees, &b.Purpose, &b.RequesterID, &b.ContactEmail, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Date = domain.DateOf(date)
	b.Slots = []string(slots)
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context, venueID string, from, to domain.Date) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR venue_id = $1) AND booking_date BETWEEN $2 AND $3
		ORDER BY booking_date, created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, venueID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByRequester(ctx context.Context, requesterID string, page domain.PaginationParams) ([]*domain.Booking, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE requester_id = $1`, requesterID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE requester_id = $1
		ORDER BY booking_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, requesterID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create inserts b after re-checking its slots under the (venue, date) lock.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := claimSlots(ctx, tx, b, ""); err != nil {
		return err
	}
	query := `
		INSERT INTO bookings (venue_id, booking_date, slots, attendees, purpose, requester_id, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, b.VenueID, b.Date.String(), pq.Array(b.Slots), b.Attendees, b.Purpose, b.RequesterID, b.ContactEmail, b.CreatedAt, b.UpdatedAt).Scan(&b.ID); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites b in place after re-checking its slots against every other booking.
// requester_id and created_at are never changed.
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := claimSlots(ctx, tx, b, b.ID); err != nil {
		return err
	}
	query := `
		UPDATE bookings
		SET venue_id = $2, booking_date = $3, slots = $4, attendees = $5, purpose = $6, contact_email = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query, b.ID, b.VenueID, b.Date.String(), pq.Array(b.Slots), b.Attendees, b.Purpose, b.ContactEmail, b.UpdatedAt)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// claimSlots serializes writers on the booking's venue/date with a transaction-scoped
// advisory lock, then fails with *domain.SlotConflictError if another booking already
// holds one of b's slots. The lock is released when tx ends.
func claimSlots(ctx context.Context, tx *sql.Tx, b *domain.Booking, excludeID string) error {
	lockKey := b.VenueID + "|" + b.Date.String()
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, lockKey); err != nil {
		return err
	}
	query := `
		SELECT slots FROM bookings
		WHERE venue_id = $1 AND booking_date = $2 AND slots && $3 AND id::text <> $4
	`
	rows, err := tx.QueryContext(ctx, query, b.VenueID, b.Date.String(), pq.Array(b.Slots), excludeID)
	if err != nil {
		return err
	}
	defer rows.Close()
	var claimed []string
	for rows.Next() {
		var slots pq.StringArray
		if err := rows.Scan(&slots); err != nil {
			return err
		}
		claimed = append(claimed, slots...)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if overlap := domain.IntersectSlots(claimed, b.Slots); len(overlap) > 0 {
		return &domain.SlotConflictError{Slots: overlap}
	}
	return nil
}

func isInvalidID(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == invalidTextRepresentation
}
