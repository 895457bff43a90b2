package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"venuebooking/internal/delivery/http/helpers"
	"venuebooking/internal/delivery/http/middleware"
	"venuebooking/internal/domain"

	"github.com/google/uuid"
)

// BookingRequest is the request body for POST /bookings and PUT /bookings/{bookingID}.
type BookingRequest struct {
	VenueID      string   `json:"venue_id" example:"D24"`
	Date         string   `json:"date" example:"2026-10-20"`
	Slots        []string `json:"slots" example:"09:00-10:00,10:00-11:00"`
	Attendees    int      `json:"attendees" example:"5"`
	Purpose      string   `json:"purpose" example:"demo"`
	ContactEmail string   `json:"contact_email,omitempty" example:"someone@example.com"`

	date domain.Date
}

// Validate implements helpers.Validator. Only wire format is checked here;
// venue, capacity, slot and date rules belong to the booking service.
func (b *BookingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(b.Date) != "" {
		d, err := domain.ParseDate(strings.TrimSpace(b.Date))
		if err != nil {
			errs = append(errs, err.Error())
		}
		b.date = d
	}
	if email := strings.TrimSpace(b.ContactEmail); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, "invalid contact_email")
		}
	}
	return errs
}

func (b *BookingRequest) input(requesterID string) domain.BookingInput {
	return domain.BookingInput{
		VenueID:      b.VenueID,
		Date:         b.date,
		Slots:        b.Slots,
		Attendees:    b.Attendees,
		Purpose:      b.Purpose,
		RequesterID:  requesterID,
		ContactEmail: b.ContactEmail,
	}
}

// ConflictCheckRequest is the request body for POST /bookings/conflicts.
type ConflictCheckRequest struct {
	VenueID          string   `json:"venue_id" example:"D24"`
	Date             string   `json:"date" example:"2026-10-20"`
	Slots            []string `json:"slots"`
	ExcludeBookingID string   `json:"exclude_booking_id,omitempty"`

	date domain.Date
}

// Validate implements helpers.Validator.
func (c *ConflictCheckRequest) Validate() []string {
	var errs []string
	d, err := domain.ParseDate(strings.TrimSpace(c.Date))
	if err != nil {
		errs = append(errs, err.Error())
	}
	c.date = d
	if c.ExcludeBookingID != "" {
		if _, err := uuid.Parse(c.ExcludeBookingID); err != nil {
			errs = append(errs, "invalid exclude_booking_id")
		}
	}
	return errs
}

// BookingSuccessResponse is the success envelope for a single booking.
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BookingListSuccessResponse is the success envelope for GET /bookings.
type BookingListSuccessResponse struct {
	Data  []*domain.Booking `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MyBookingsPage is the data of GET /bookings/me.
type MyBookingsPage struct {
	Items      []*domain.Booking      `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// MyBookingsSuccessResponse is the success envelope for GET /bookings/me.
type MyBookingsSuccessResponse struct {
	Data  *MyBookingsPage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ConflictCheckSuccessResponse is the success envelope for POST /bookings/conflicts.
type ConflictCheckSuccessResponse struct {
	Data  *domain.ConflictResult `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type BookingController struct {
	Logger   *slog.Logger
	Service  domain.BookingService
	Notifier domain.BookingNotifier
}

// NewBookingController returns a BookingController. notifier may be nil.
func NewBookingController(logger *slog.Logger, svc domain.BookingService, notifier domain.BookingNotifier) *BookingController {
	return &BookingController{
		Logger:   logger,
		Service:  svc,
		Notifier: notifier,
	}
}

// CreateBooking godoc
// @Summary Book slots of a venue
// @Description Books every requested slot of one venue on one date for the authenticated requester, or none of them. Slots already held by another booking are reported in error.details.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.BookingRequest true "Booking"
// @Success 201 {object} controllers.BookingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_conflict"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), req.input(requesterID))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.notify(r.Context(), "confirmed", booking)
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// GetBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings/{bookingID} [get]
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingIDFromPath(w, r)
	if !ok {
		return
	}
	booking, err := c.Service.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// UpdateBooking godoc
// @Summary Edit a booking
// @Description Replaces venue, date, slots and details of a booking owned by the caller. The booking's own slots never conflict with themselves.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID (UUID)"
// @Param body body controllers.BookingRequest true "Booking"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_conflict"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings/{bookingID} [put]
func (c *BookingController) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingIDFromPath(w, r)
	if !ok {
		return
	}
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := c.ownedBooking(w, r, id, requesterID); !ok {
		return
	}
	booking, err := c.Service.EditBooking(r.Context(), id, req.input(requesterID))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.notify(r.Context(), "updated", booking)
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Cancels a booking owned by the caller and frees its slots. Returns the cancelled booking.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID (UUID)"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings/{bookingID} [delete]
func (c *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingIDFromPath(w, r)
	if !ok {
		return
	}
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	booking, ok := c.ownedBooking(w, r, id, requesterID)
	if !ok {
		return
	}
	if err := c.Service.CancelBooking(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.notify(r.Context(), "cancelled", booking)
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// ListBookings godoc
// @Summary List bookings in a date range
// @Description Lists bookings with from <= date <= to, optionally for one venue.
// @Tags bookings
// @Produce json
// @Param venue_id query string false "Venue ID; empty means every venue"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} controllers.BookingListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_error"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, ok := optionalDate(w, q.Get("from"), "from")
	if !ok {
		return
	}
	to, ok := optionalDate(w, q.Get("to"), "to")
	if !ok {
		return
	}
	bookings, err := c.Service.ListBookings(r.Context(), q.Get("venue_id"), from, to)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// ListMyBookings godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.MyBookingsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings/me [get]
func (c *BookingController) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.RequesterIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	page := helpers.ParsePagination(r)
	bookings, total, err := c.Service.ListMyBookings(r.Context(), requesterID, page)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &MyBookingsPage{
		Items:      bookings,
		Pagination: helpers.NewPaginationMeta(page.Page, page.PageSize, total),
	})
}

// CheckConflict godoc
// @Summary Check slots for conflicts
// @Description Reports which of the candidate slots are already held on the venue/date. Pass exclude_booking_id when editing so the booking's own slots are ignored.
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body controllers.ConflictCheckRequest true "Candidate slots"
// @Success 200 {object} controllers.ConflictCheckSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_error"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /bookings/conflicts [post]
func (c *BookingController) CheckConflict(w http.ResponseWriter, r *http.Request) {
	var req ConflictCheckRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.CheckConflict(r.Context(), req.VenueID, req.date, req.Slots, req.ExcludeBookingID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &result)
}

// ownedBooking loads the booking and writes 403 (or the lookup error) unless requesterID owns it.
func (c *BookingController) ownedBooking(w http.ResponseWriter, r *http.Request, id, requesterID string) (*domain.Booking, bool) {
	existing, err := c.Service.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return nil, false
	}
	if existing.RequesterID != requesterID {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "booking belongs to another requester")
		return nil, false
	}
	return existing, true
}

// notify tells the requester about a completed change. Delivery failures are logged only.
func (c *BookingController) notify(ctx context.Context, event string, b *domain.Booking) {
	if c.Notifier == nil {
		return
	}
	var err error
	switch event {
	case "confirmed":
		err = c.Notifier.BookingConfirmed(ctx, b)
	case "updated":
		err = c.Notifier.BookingUpdated(ctx, b)
	case "cancelled":
		err = c.Notifier.BookingCancelled(ctx, b)
	}
	if err != nil {
		c.Logger.WarnContext(ctx, "booking notification failed", "event", event, "booking_id", b.ID, "err", err)
	}
}

func bookingIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("bookingID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid bookingID")
		return "", false
	}
	return id, true
}

// optionalDate parses s as YYYY-MM-DD; an empty s is the zero Date.
func optionalDate(w http.ResponseWriter, s, name string) (domain.Date, bool) {
	if s == "" {
		return domain.Date{}, true
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name+": expected YYYY-MM-DD")
		return domain.Date{}, false
	}
	return d, true
}
