package services

import (
	"time"

	"venuebooking/internal/domain"
)

const daysPerWeek = 7

// monthGridBounds returns the first and last day shown for a month: whole
// Monday-start weeks covering the 1st through the last day of the month.
func monthGridBounds(year int, month time.Month) (domain.Date, domain.Date) {
	first := domain.NewDate(year, month, 1)
	last := domain.NewDate(year, month+1, 0)
	return first.StartOfWeek(), last.StartOfWeek().AddDays(daysPerWeek - 1)
}

// BuildMonthGrid lays out the month view. A day has a booking when any booking
// for venueID (every venue if venueID is empty) falls on it. Days before today
// are kept but marked non-interactive.
func BuildMonthGrid(year int, month time.Month, venueID string, bookings []*domain.Booking, today domain.Date) []domain.DayCell {
	booked := make(map[domain.Date]bool)
	for _, b := range bookings {
		if b == nil || (venueID != "" && b.VenueID != venueID) {
			continue
		}
		booked[b.Date] = true
	}

	from, to := monthGridBounds(year, month)
	cells := make([]domain.DayCell, 0, 42)
	for d := from; !d.After(to); d = d.AddDays(1) {
		cells = append(cells, domain.DayCell{
			Date:           d,
			InCurrentMonth: d.Year == year && d.Month == month,
			HasBooking:     booked[d],
			Interactive:    !d.Before(today),
		})
	}
	return cells
}

// BuildWeekGrid lays out the slot-by-day occupancy table for the week containing
// weekStart. Slot labels that are not in catalog are not placed.
func BuildWeekGrid(weekStart domain.Date, catalog *domain.SlotCatalog, venueID string, bookings []*domain.Booking, today domain.Date) *domain.WeekGrid {
	start := weekStart.StartOfWeek()

	days := make([]domain.WeekDay, daysPerWeek)
	dayIndex := make(map[domain.Date]int, daysPerWeek)
	for i := range days {
		d := start.AddDays(i)
		days[i] = domain.WeekDay{Date: d, Interactive: !d.Before(today)}
		dayIndex[d] = i
	}

	labels := catalog.Labels()
	cells := make([][]*domain.Booking, len(labels))
	for i := range cells {
		cells[i] = make([]*domain.Booking, daysPerWeek)
	}

	for _, b := range bookings {
		if b == nil || (venueID != "" && b.VenueID != venueID) {
			continue
		}
		day, ok := dayIndex[b.Date]
		if !ok {
			continue
		}
		for _, label := range b.Slots {
			if row, ok := catalog.Index(label); ok && cells[row][day] == nil {
				cells[row][day] = b
			}
		}
	}

	return &domain.WeekGrid{
		WeekStart: start,
		Days:      days,
		Slots:     labels,
		Cells:     cells,
	}
}
