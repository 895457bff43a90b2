package venues

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"venuebooking/internal/domain"
)

type staticRegistry struct {
	byID  map[string]*domain.Venue
	order []string
}

// NewStaticRegistry returns a read-only VenueRegistry over the given venues.
// IDs must be unique and capacities positive.
func NewStaticRegistry(venues []*domain.Venue) (domain.VenueRegistry, error) {
	r := &staticRegistry{byID: make(map[string]*domain.Venue, len(venues))}
	for _, v := range venues {
		if v.ID == "" {
			return nil, fmt.Errorf("venue id is required")
		}
		if v.Capacity < 1 {
			return nil, fmt.Errorf("venue %s: capacity must be positive", v.ID)
		}
		if _, dup := r.byID[v.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %s", v.ID)
		}
		copied := *v
		r.byID[v.ID] = &copied
		r.order = append(r.order, v.ID)
	}
	sort.Strings(r.order)
	return r, nil
}

func (r *staticRegistry) Get(id string) (*domain.Venue, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

// List returns the venues ordered by ID.
func (r *staticRegistry) List() []*domain.Venue {
	out := make([]*domain.Venue, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.byID[id]
		out = append(out, &copied)
	}
	return out
}

// ParseList reads "id:name:capacity" entries separated by commas,
// e.g. "D24:Design Studio:20,B12:Board Room:8".
func ParseList(list string) ([]*domain.Venue, error) {
	var out []*domain.Venue
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid venue entry %q: expected id:name:capacity", entry)
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid capacity in venue entry %q: %w", entry, err)
		}
		out = append(out, domain.NewVenue(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), capacity))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no venues configured")
	}
	return out, nil
}
