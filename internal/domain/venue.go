package domain

// Venue is a bookable room.
// swagger:model Venue
type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// NewVenue returns a Venue with the given fields.
func NewVenue(id, name string, capacity int) *Venue {
	return &Venue{ID: id, Name: name, Capacity: capacity}
}

// VenueRegistry is the read-only catalogue of venues.
type VenueRegistry interface {
	// Get returns ErrNotFound for an unknown id.
	Get(id string) (*Venue, error)
	List() []*Venue
}
