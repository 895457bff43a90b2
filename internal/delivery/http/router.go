package http

import (
	"net/http"

	"venuebooking/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every route. Reads are public; requireAuth guards the writes
// and the requester-scoped listing.
func NewRouter(
	bookings *controllers.BookingController,
	calendar *controllers.CalendarController,
	venues *controllers.VenueController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Pickers
	mux.HandleFunc("GET /venues", venues.ListVenues)
	mux.HandleFunc("GET /slots", venues.ListSlots)

	// Bookings
	mux.HandleFunc("GET /bookings", bookings.ListBookings)
	mux.HandleFunc("POST /bookings", requireAuth(bookings.CreateBooking))
	mux.HandleFunc("GET /bookings/me", requireAuth(bookings.ListMyBookings))
	mux.HandleFunc("POST /bookings/conflicts", bookings.CheckConflict)
	mux.HandleFunc("GET /bookings/{bookingID}", bookings.GetBooking)
	mux.HandleFunc("PUT /bookings/{bookingID}", requireAuth(bookings.UpdateBooking))
	mux.HandleFunc("DELETE /bookings/{bookingID}", requireAuth(bookings.CancelBooking))

	// Calendar
	mux.HandleFunc("GET /calendar/month", calendar.MonthGrid)
	mux.HandleFunc("GET /calendar/week", calendar.WeekGrid)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
