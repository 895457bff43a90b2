package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venuebooking/internal/delivery/http/helpers"
	"venuebooking/internal/delivery/http/middleware"
	"venuebooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBookingID = "6f1c2a4e-8d3b-4c1a-9e7f-2b5d8c9a0e11"
	testRequester = "req-1"
)

type mockBookingService struct {
	booking     *domain.Booking
	bookings    []*domain.Booking
	total       int
	conflict    domain.ConflictResult
	days        []domain.DayCell
	week        *domain.WeekGrid
	slots       []domain.Slot
	err         error
	getErr      error
	gotInput    domain.BookingInput
	gotID       string
	gotVenue    string
	gotFrom     domain.Date
	gotTo       domain.Date
	gotExclude  string
	gotPage     domain.PaginationParams
	gotYear     int
	gotMonth    time.Month
	gotStart    domain.Date
	cancelCalls int
}

func (m *mockBookingService) CreateBooking(_ context.Context, in domain.BookingInput) (*domain.Booking, error) {
	m.gotInput = in
	return m.booking, m.err
}

func (m *mockBookingService) EditBooking(_ context.Context, id string, in domain.BookingInput) (*domain.Booking, error) {
	m.gotID, m.gotInput = id, in
	return m.booking, m.err
}

func (m *mockBookingService) CancelBooking(_ context.Context, id string) error {
	m.gotID = id
	m.cancelCalls++
	return m.err
}

func (m *mockBookingService) CheckConflict(_ context.Context, venueID string, date domain.Date, slots []string, exclude string) (domain.ConflictResult, error) {
	m.gotVenue, m.gotFrom, m.gotExclude = venueID, date, exclude
	m.gotInput.Slots = slots
	return m.conflict, m.err
}

func (m *mockBookingService) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	m.gotID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingService) ListBookings(_ context.Context, venueID string, from, to domain.Date) ([]*domain.Booking, error) {
	m.gotVenue, m.gotFrom, m.gotTo = venueID, from, to
	return m.bookings, m.err
}

func (m *mockBookingService) ListMyBookings(_ context.Context, requesterID string, page domain.PaginationParams) ([]*domain.Booking, int, error) {
	m.gotInput.RequesterID, m.gotPage = requesterID, page
	return m.bookings, m.total, m.err
}

func (m *mockBookingService) MonthGrid(_ context.Context, venueID string, year int, month time.Month) ([]domain.DayCell, error) {
	m.gotVenue, m.gotYear, m.gotMonth = venueID, year, month
	return m.days, m.err
}

func (m *mockBookingService) WeekGrid(_ context.Context, venueID string, weekStart domain.Date) (*domain.WeekGrid, error) {
	m.gotVenue, m.gotStart = venueID, weekStart
	return m.week, m.err
}

func (m *mockBookingService) Slots() []domain.Slot { return m.slots }

type recordingNotifier struct {
	events []string
	err    error
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, b *domain.Booking) error {
	n.events = append(n.events, "confirmed:"+b.ID)
	return n.err
}

func (n *recordingNotifier) BookingUpdated(_ context.Context, b *domain.Booking) error {
	n.events = append(n.events, "updated:"+b.ID)
	return n.err
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, b *domain.Booking) error {
	n.events = append(n.events, "cancelled:"+b.ID)
	return n.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:          testBookingID,
		VenueID:     "D24",
		Date:        domain.NewDate(2026, 10, 20),
		Slots:       []string{"09:00-10:00", "10:00-11:00"},
		Attendees:   5,
		Purpose:     "demo",
		RequesterID: testRequester,
	}
}

func authed(req *http.Request, requesterID string) *http.Request {
	return req.WithContext(middleware.SetRequesterID(req.Context(), requesterID))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

const createBody = `{"venue_id":"D24","date":"2026-10-20","slots":["09:00-10:00","10:00-11:00"],"attendees":5,"purpose":"demo"}`

func TestBookingController_CreateBooking(t *testing.T) {
	svc := &mockBookingService{booking: sampleBooking()}
	notifier := &recordingNotifier{}
	ctrl := NewBookingController(testLogger(), svc, notifier)

	req := authed(httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody)), testRequester)
	rr := httptest.NewRecorder()
	ctrl.CreateBooking(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeEnvelope(t, rr)
	assert.Nil(t, resp.Error)
	data := resp.Data.(map[string]any)
	assert.Equal(t, testBookingID, data["id"])
	assert.Equal(t, "2026-10-20", data["date"])

	assert.Equal(t, domain.BookingInput{
		VenueID:     "D24",
		Date:        domain.NewDate(2026, 10, 20),
		Slots:       []string{"09:00-10:00", "10:00-11:00"},
		Attendees:   5,
		Purpose:     "demo",
		RequesterID: testRequester,
	}, svc.gotInput)
	assert.Equal(t, []string{"confirmed:" + testBookingID}, notifier.events)
}

func TestBookingController_CreateBooking_NotificationFailureIsNotSurfaced(t *testing.T) {
	svc := &mockBookingService{booking: sampleBooking()}
	ctrl := NewBookingController(testLogger(), svc, &recordingNotifier{err: errors.New("ses down")})

	req := authed(httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody)), testRequester)
	rr := httptest.NewRecorder()
	ctrl.CreateBooking(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestBookingController_CreateBooking_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		requester   string
		svcErr      error
		wantStatus  int
		wantCode    string
		wantDetails []string
	}{
		{
			name:       "unauthenticated",
			body:       createBody,
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "malformed json",
			body:       `{"venue_id":`,
			requester:  testRequester,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:        "bad date format",
			body:        `{"venue_id":"D24","date":"20/10/2026","slots":["09:00-10:00"],"attendees":1,"purpose":"x"}`,
			requester:   testRequester,
			wantStatus:  http.StatusBadRequest,
			wantCode:    helpers.ErrCodeValidation,
			wantDetails: []string{`invalid date "20/10/2026": expected YYYY-MM-DD`},
		},
		{
			name:        "service validation",
			body:        createBody,
			requester:   testRequester,
			svcErr:      domain.NewValidationError("attendees 25 exceed capacity 20 of venue D24"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    helpers.ErrCodeValidation,
			wantDetails: []string{"attendees 25 exceed capacity 20 of venue D24"},
		},
		{
			name:        "slot conflict",
			body:        createBody,
			requester:   testRequester,
			svcErr:      &domain.SlotConflictError{Slots: []string{"10:00-11:00"}},
			wantStatus:  http.StatusConflict,
			wantCode:    helpers.ErrCodeSlotConflict,
			wantDetails: []string{"10:00-11:00"},
		},
		{
			name:       "store unavailable",
			body:       createBody,
			requester:  testRequester,
			svcErr:     fmt.Errorf("create booking: %w: %w", domain.ErrStoreUnavailable, errors.New("dial tcp")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   helpers.ErrCodeStoreUnavailable,
		},
		{
			name:       "unexpected",
			body:       createBody,
			requester:  testRequester,
			svcErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{err: tt.svcErr}
			notifier := &recordingNotifier{}
			ctrl := NewBookingController(testLogger(), svc, notifier)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			if tt.requester != "" {
				req = authed(req, tt.requester)
			}
			rr := httptest.NewRecorder()
			ctrl.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, resp.Error.Details)
			}
			assert.Empty(t, notifier.events)
		})
	}
}

func TestBookingController_GetBooking(t *testing.T) {
	svc := &mockBookingService{booking: sampleBooking()}
	ctrl := NewBookingController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+testBookingID, nil)
	req.SetPathValue("bookingID", testBookingID)
	rr := httptest.NewRecorder()
	ctrl.GetBooking(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testBookingID, svc.gotID)

	req = httptest.NewRequest(http.MethodGet, "/bookings/nope", nil)
	req.SetPathValue("bookingID", "nope")
	rr = httptest.NewRecorder()
	ctrl.GetBooking(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.getErr = domain.ErrNotFound
	req = httptest.NewRequest(http.MethodGet, "/bookings/"+testBookingID, nil)
	req.SetPathValue("bookingID", testBookingID)
	rr = httptest.NewRecorder()
	ctrl.GetBooking(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, helpers.ErrCodeNotFound, decodeEnvelope(t, rr).Error.Code)
}

func TestBookingController_UpdateBooking(t *testing.T) {
	body := `{"venue_id":"D24","date":"2026-10-20","slots":["09:00-10:00","10:00-11:00"],"attendees":5,"purpose":"retro"}`

	tests := []struct {
		name       string
		requester  string
		getErr     error
		wantStatus int
		wantEvents []string
	}{
		{"owner edits", testRequester, nil, http.StatusOK, []string{"updated:" + testBookingID}},
		{"other requester", "req-2", nil, http.StatusForbidden, nil},
		{"unknown booking", testRequester, domain.ErrNotFound, http.StatusNotFound, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{booking: sampleBooking(), getErr: tt.getErr}
			notifier := &recordingNotifier{}
			ctrl := NewBookingController(testLogger(), svc, notifier)

			req := httptest.NewRequest(http.MethodPut, "/bookings/"+testBookingID, strings.NewReader(body))
			req.SetPathValue("bookingID", testBookingID)
			rr := httptest.NewRecorder()
			ctrl.UpdateBooking(rr, authed(req, tt.requester))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantEvents, notifier.events)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testBookingID, svc.gotID)
				assert.Equal(t, "retro", svc.gotInput.Purpose)
				assert.Equal(t, testRequester, svc.gotInput.RequesterID)
			}
		})
	}
}

func TestBookingController_CancelBooking(t *testing.T) {
	svc := &mockBookingService{booking: sampleBooking()}
	notifier := &recordingNotifier{}
	ctrl := NewBookingController(testLogger(), svc, notifier)

	req := httptest.NewRequest(http.MethodDelete, "/bookings/"+testBookingID, nil)
	req.SetPathValue("bookingID", testBookingID)
	rr := httptest.NewRecorder()
	ctrl.CancelBooking(rr, authed(req, testRequester))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, svc.cancelCalls)
	assert.Equal(t, []string{"cancelled:" + testBookingID}, notifier.events)

	// someone else's booking is left alone
	svc = &mockBookingService{booking: sampleBooking()}
	ctrl = NewBookingController(testLogger(), svc, notifier)
	rr = httptest.NewRecorder()
	ctrl.CancelBooking(rr, authed(req, "req-2"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Zero(t, svc.cancelCalls)
}

func TestBookingController_ListBookings(t *testing.T) {
	svc := &mockBookingService{bookings: []*domain.Booking{sampleBooking()}}
	ctrl := NewBookingController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings?venue_id=D24&from=2026-10-01&to=2026-10-31", nil)
	rr := httptest.NewRecorder()
	ctrl.ListBookings(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "D24", svc.gotVenue)
	assert.Equal(t, domain.NewDate(2026, 10, 1), svc.gotFrom)
	assert.Equal(t, domain.NewDate(2026, 10, 31), svc.gotTo)
	assert.Len(t, decodeEnvelope(t, rr).Data, 1)

	rr = httptest.NewRecorder()
	ctrl.ListBookings(rr, httptest.NewRequest(http.MethodGet, "/bookings?from=yesterday&to=2026-10-31", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBookingController_ListMyBookings(t *testing.T) {
	svc := &mockBookingService{bookings: []*domain.Booking{sampleBooking()}, total: 21}
	ctrl := NewBookingController(testLogger(), svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings/me?page=2&page_size=10", nil)
	rr := httptest.NewRecorder()
	ctrl.ListMyBookings(rr, authed(req, testRequester))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testRequester, svc.gotInput.RequesterID)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, svc.gotPage)

	var resp MyBookingsSuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3}, resp.Data.Pagination)
	require.Len(t, resp.Data.Items, 1)

	rr = httptest.NewRecorder()
	ctrl.ListMyBookings(rr, httptest.NewRequest(http.MethodGet, "/bookings/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBookingController_CheckConflict(t *testing.T) {
	svc := &mockBookingService{conflict: domain.ConflictResult{Conflicting: true, ConflictingSlots: []string{"10:00-11:00"}}}
	ctrl := NewBookingController(testLogger(), svc, nil)

	body := `{"venue_id":"D24","date":"2026-10-20","slots":["10:00-11:00","11:00-12:00"],"exclude_booking_id":"` + testBookingID + `"}`
	rr := httptest.NewRecorder()
	ctrl.CheckConflict(rr, httptest.NewRequest(http.MethodPost, "/bookings/conflicts", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"conflicting":true,"conflicting_slots":["10:00-11:00"]},"error":null}`, rr.Body.String())
	assert.Equal(t, "D24", svc.gotVenue)
	assert.Equal(t, domain.NewDate(2026, 10, 20), svc.gotFrom)
	assert.Equal(t, testBookingID, svc.gotExclude)
	assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, svc.gotInput.Slots)

	rr = httptest.NewRecorder()
	ctrl.CheckConflict(rr, httptest.NewRequest(http.MethodPost, "/bookings/conflicts",
		strings.NewReader(`{"venue_id":"D24","date":"2026-10-20","slots":["10:00-11:00"],"exclude_booking_id":"bk-1"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
