package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"venuebooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVenues []*domain.Venue

func (s stubVenues) Get(id string) (*domain.Venue, error) {
	for _, v := range s {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s stubVenues) List() []*domain.Venue { return s }

func TestVenueController(t *testing.T) {
	venues := stubVenues{domain.NewVenue("B12", "Board Room", 8), domain.NewVenue("D24", "Design Studio", 20)}
	catalog, err := domain.NewSlotCatalog(9*60, 11*60, 60)
	require.NoError(t, err)
	svc := &mockBookingService{slots: catalog.Slots()}
	ctrl := NewVenueController(testLogger(), venues, svc)

	rr := httptest.NewRecorder()
	ctrl.ListVenues(rr, httptest.NewRequest(http.MethodGet, "/venues", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[
		{"id":"B12","name":"Board Room","capacity":8},
		{"id":"D24","name":"Design Studio","capacity":20}
	],"error":null}`, rr.Body.String())

	rr = httptest.NewRecorder()
	ctrl.ListSlots(rr, httptest.NewRequest(http.MethodGet, "/slots", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[
		{"label":"09:00-10:00","start":"09:00","end":"10:00"},
		{"label":"10:00-11:00","start":"10:00","end":"11:00"}
	],"error":null}`, rr.Body.String())
}
