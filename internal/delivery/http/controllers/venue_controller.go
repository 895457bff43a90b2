package controllers

import (
	"log/slog"
	"net/http"

	"venuebooking/internal/delivery/http/helpers"
	"venuebooking/internal/domain"
)

// SlotView is one entry of GET /slots.
type SlotView struct {
	Label string `json:"label" example:"09:00-10:00"`
	Start string `json:"start" example:"09:00"`
	End   string `json:"end" example:"10:00"`
}

// VenueListSuccessResponse is the success envelope for GET /venues.
type VenueListSuccessResponse struct {
	Data  []*domain.Venue   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SlotListSuccessResponse is the success envelope for GET /slots.
type SlotListSuccessResponse struct {
	Data  []SlotView        `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VenueController serves the pickers: venues and the daily slot catalog.
type VenueController struct {
	Logger  *slog.Logger
	Venues  domain.VenueRegistry
	Service domain.BookingService
}

func NewVenueController(logger *slog.Logger, venues domain.VenueRegistry, svc domain.BookingService) *VenueController {
	return &VenueController{
		Logger:  logger,
		Venues:  venues,
		Service: svc,
	}
}

// ListVenues godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {object} controllers.VenueListSuccessResponse
// @Router /venues [get]
func (c *VenueController) ListVenues(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Venues.List())
}

// ListSlots godoc
// @Summary List bookable slots
// @Description The ordered slots every day is divided into.
// @Tags venues
// @Produce json
// @Success 200 {object} controllers.SlotListSuccessResponse
// @Router /slots [get]
func (c *VenueController) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots := c.Service.Slots()
	out := make([]SlotView, len(slots))
	for i, s := range slots {
		out[i] = SlotView{Label: s.Label(), Start: s.Start.String(), End: s.End.String()}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}
