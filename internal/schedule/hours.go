package schedule

import (
	"fmt"
	"time"
)

// MeetingDuration is the fixed length of every consultation slot.
const MeetingDuration = 30 * time.Minute

// BusinessHours is the daily window during which meeting slots are offered.
// Hours are wall-clock hours in TimeZone; EndHour is exclusive.
type BusinessHours struct {
	StartHour int
	EndHour   int
	TimeZone  string
}

// DefaultBusinessHours mirrors the sales team's availability.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{StartHour: 9, EndHour: 15, TimeZone: "America/Mexico_City"}
}

// Validate checks the 0 <= start < end <= 24 invariant.
func (h BusinessHours) Validate() error {
	if h.StartHour < 0 || h.EndHour > 24 || h.StartHour >= h.EndHour {
		return fmt.Errorf("schedule: invalid business hours %d-%d", h.StartHour, h.EndHour)
	}
	if _, err := h.Location(); err != nil {
		return fmt.Errorf("schedule: invalid timezone %q: %w", h.TimeZone, err)
	}
	return nil
}

// Location resolves the configured timezone.
func (h BusinessHours) Location() (*time.Location, error) {
	return time.LoadLocation(h.TimeZone)
}

// dateOnly truncates t to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay compares calendar dates, ignoring time-of-day and location offsets
// beyond what the caller already normalized.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
