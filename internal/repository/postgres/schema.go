package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates the bookings table and its indexes if they do not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	venue_id TEXT NOT NULL,
	booking_date DATE NOT NULL,
	slots TEXT[] NOT NULL CHECK (cardinality(slots) > 0),
	attendees INTEGER NOT NULL CHECK (attendees > 0),
	purpose TEXT NOT NULL,
	requester_id TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP WITH TIME ZONE NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS bookings_venue_date_idx ON bookings (venue_id, booking_date);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings venue/date index: %w", err)
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS bookings_requester_idx ON bookings (requester_id, booking_date DESC);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings requester index: %w", err)
	}
	return nil
}
