package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"venuebooking/internal/delivery/http/helpers"
	"venuebooking/internal/domain"
)

// writeServiceError maps a domain error onto the API envelope. Only unexpected
// failures are logged; typed rejections are the caller's problem.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	var cerr *domain.SlotConflictError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONErrorDetails(w, http.StatusBadRequest, helpers.ErrCodeValidation, verr.Error(), verr.Problems)
	case errors.As(err, &cerr):
		helpers.WriteJSONErrorDetails(w, http.StatusConflict, helpers.ErrCodeSlotConflict, cerr.Error(), cerr.Slots)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "booking not found")
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.ErrorContext(r.Context(), "booking store unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeStoreUnavailable, "booking store unavailable, try again")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
