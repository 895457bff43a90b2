package domain

// DayCell is one day of the month view.
// swagger:model DayCell
type DayCell struct {
	Date           Date `json:"date" swaggertype:"string"`
	InCurrentMonth bool `json:"in_current_month"`
	HasBooking     bool `json:"has_booking"`
	// Interactive is false for days before today; they are shown but not clickable.
	Interactive bool `json:"interactive"`
}

// WeekDay is a column header of the week view.
type WeekDay struct {
	Date        Date `json:"date" swaggertype:"string"`
	Interactive bool `json:"interactive"`
}

// WeekGrid is the per-slot occupancy table of a Monday-start week.
// Cells is indexed [slot][day]; a nil cell is free.
// swagger:model WeekGrid
type WeekGrid struct {
	WeekStart Date         `json:"week_start" swaggertype:"string"`
	Days      []WeekDay    `json:"days"`
	Slots     []string     `json:"slots"`
	Cells     [][]*Booking `json:"cells"`
}
