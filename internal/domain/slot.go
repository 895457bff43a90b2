package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time as minutes since midnight. 24:00 is valid as an end bound.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || m < 0 || m > 59 || h*60+m > minutesPerDay {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Slot is one fixed-length bookable interval of a day.
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Label returns the slot identity, e.g. "09:00-10:00".
func (s Slot) Label() string {
	return s.Start.String() + "-" + s.End.String()
}

func (s Slot) MarshalText() ([]byte, error) { return []byte(s.Label()), nil }

// ParseSlot parses a "HH:MM-HH:MM" label.
func ParseSlot(label string) (Slot, error) {
	a, b, ok := strings.Cut(label, "-")
	if !ok {
		return Slot{}, fmt.Errorf("invalid slot %q: expected HH:MM-HH:MM", label)
	}
	start, err := ParseTimeOfDay(a)
	if err != nil {
		return Slot{}, err
	}
	end, err := ParseTimeOfDay(b)
	if err != nil {
		return Slot{}, err
	}
	if end <= start {
		return Slot{}, fmt.Errorf("invalid slot %q: end must be after start", label)
	}
	return Slot{Start: start, End: end}, nil
}

// GenerateSlots enumerates the full-length slots of [dayStart, dayEnd) in order.
// A trailing remainder shorter than interval is not emitted.
func GenerateSlots(dayStart, dayEnd TimeOfDay, intervalMinutes int) ([]Slot, error) {
	if intervalMinutes <= 0 {
		return nil, errors.New("slot interval must be positive")
	}
	if dayStart < 0 || dayEnd > minutesPerDay || dayEnd <= dayStart {
		return nil, fmt.Errorf("invalid day window %s-%s", dayStart, dayEnd)
	}
	if int(dayEnd-dayStart) < intervalMinutes {
		return nil, fmt.Errorf("slot interval %dm exceeds day window %s-%s", intervalMinutes, dayStart, dayEnd)
	}
	step := TimeOfDay(intervalMinutes)
	slots := make([]Slot, 0, int(dayEnd-dayStart)/intervalMinutes)
	for start := dayStart; start+step <= dayEnd; start += step {
		slots = append(slots, Slot{Start: start, End: start + step})
	}
	return slots, nil
}

// SlotCatalog is the immutable set of slots bookable on any day.
type SlotCatalog struct {
	dayStart TimeOfDay
	dayEnd   TimeOfDay
	interval int
	slots    []Slot
	index    map[string]int
}

func NewSlotCatalog(dayStart, dayEnd TimeOfDay, intervalMinutes int) (*SlotCatalog, error) {
	slots, err := GenerateSlots(dayStart, dayEnd, intervalMinutes)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(slots))
	for i, s := range slots {
		index[s.Label()] = i
	}
	return &SlotCatalog{
		dayStart: dayStart,
		dayEnd:   dayEnd,
		interval: intervalMinutes,
		slots:    slots,
		index:    index,
	}, nil
}

func (c *SlotCatalog) DayStart() TimeOfDay { return c.dayStart }

func (c *SlotCatalog) DayEnd() TimeOfDay { return c.dayEnd }

func (c *SlotCatalog) IntervalMinutes() int { return c.interval }

func (c *SlotCatalog) Len() int { return len(c.slots) }

// Slots returns a copy of the ordered slots.
func (c *SlotCatalog) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *SlotCatalog) Labels() []string {
	out := make([]string, len(c.slots))
	for i, s := range c.slots {
		out[i] = s.Label()
	}
	return out
}

func (c *SlotCatalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

// Index returns the position of label in the catalog.
func (c *SlotCatalog) Index(label string) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// UniqueSlots drops repeated labels, keeping first occurrences in order.
func UniqueSlots(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// IntersectSlots returns the labels of candidates also present in claimed,
// in candidate order and without repeats.
func IntersectSlots(claimed, candidates []string) []string {
	set := make(map[string]struct{}, len(claimed))
	for _, l := range claimed {
		set[l] = struct{}{}
	}
	var out []string
	for _, l := range UniqueSlots(candidates) {
		if _, ok := set[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
