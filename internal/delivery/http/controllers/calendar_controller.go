package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"venuebooking/internal/delivery/http/helpers"
	"venuebooking/internal/domain"
)

// MonthView is the data of GET /calendar/month.
type MonthView struct {
	VenueID string           `json:"venue_id"`
	Month   string           `json:"month" example:"2026-10"`
	Days    []domain.DayCell `json:"days"`
}

// MonthViewSuccessResponse is the success envelope for GET /calendar/month.
type MonthViewSuccessResponse struct {
	Data  *MonthView        `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// WeekViewSuccessResponse is the success envelope for GET /calendar/week.
type WeekViewSuccessResponse struct {
	Data  *domain.WeekGrid  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.BookingService
	now     func() time.Time
}

func NewCalendarController(logger *slog.Logger, svc domain.BookingService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
		now:     time.Now,
	}
}

// MonthGrid godoc
// @Summary Month calendar
// @Description Monday-first grid covering the whole weeks of the month, with a has_booking flag per day. Days before today are not interactive.
// @Tags calendar
// @Produce json
// @Param venue_id query string false "Venue ID; empty means every venue"
// @Param month query string false "Month (YYYY-MM), default current month"
// @Success 200 {object} controllers.MonthViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_error"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /calendar/month [get]
func (c *CalendarController) MonthGrid(w http.ResponseWriter, r *http.Request) {
	venueID := r.URL.Query().Get("venue_id")
	month := c.now()
	if s := r.URL.Query().Get("month"); s != "" {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid month: expected YYYY-MM")
			return
		}
		month = t
	}
	days, err := c.Service.MonthGrid(r.Context(), venueID, month.Year(), month.Month())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &MonthView{
		VenueID: venueID,
		Month:   month.Format("2006-01"),
		Days:    days,
	})
}

// WeekGrid godoc
// @Summary Week calendar
// @Description Slot-by-day occupancy of the Monday-start week containing start. A null cell is free.
// @Tags calendar
// @Produce json
// @Param venue_id query string false "Venue ID; empty means every venue"
// @Param start query string false "Any date in the week (YYYY-MM-DD), default today"
// @Success 200 {object} controllers.WeekViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, validation_error"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /calendar/week [get]
func (c *CalendarController) WeekGrid(w http.ResponseWriter, r *http.Request) {
	start, ok := optionalDate(w, r.URL.Query().Get("start"), "start")
	if !ok {
		return
	}
	if start.IsZero() {
		start = domain.DateOf(c.now())
	}
	grid, err := c.Service.WeekGrid(r.Context(), r.URL.Query().Get("venue_id"), start)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grid)
}
