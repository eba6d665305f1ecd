package schedule

import (
	"fmt"
	"time"
)

// slotBuffer keeps same-day slots bookable only when they start comfortably
// after the current moment.
const slotBuffer = 10 * time.Minute

// Slot is a bookable half-hour interval within business hours.
type Slot struct {
	Time     string    `json:"time"`  // 24h wall clock, "HH:MM"
	Label    string    `json:"label"` // 12h display form, "9:00 AM"
	Start    time.Time `json:"start"`
	Disabled bool      `json:"disabled"`
}

// SlotsFor generates the half-hour slots for date under hours, two per hour
// from StartHour:00 through (EndHour-1):30. A slot is disabled only when date
// is today (in the business timezone) and its start is at or before
// now+slotBuffer; slots on future dates are never disabled.
func SlotsFor(date time.Time, hours BusinessHours, now time.Time) ([]Slot, error) {
	loc, err := hours.Location()
	if err != nil {
		return nil, fmt.Errorf("schedule: resolve timezone: %w", err)
	}

	localNow := now.In(loc)
	isToday := sameDay(date, localNow)

	slots := make([]Slot, 0, 2*(hours.EndHour-hours.StartHour))
	for hour := hours.StartHour; hour < hours.EndHour; hour++ {
		for _, minute := range []int{0, 30} {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
			s := Slot{
				Time:  fmt.Sprintf("%02d:%02d", hour, minute),
				Label: Format12Hour(hour, minute),
				Start: start,
			}
			if isToday && !start.After(localNow.Add(slotBuffer)) {
				s.Disabled = true
			}
			slots = append(slots, s)
		}
	}
	return slots, nil
}

// Format12Hour renders a wall-clock time the way the scheduler displays it.
func Format12Hour(hour, minute int) string {
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, minute, ampm)
}

// EndOf returns the wall-clock end of a slot beginning at "HH:MM".
func EndOf(slotTime string) (string, error) {
	start, err := time.Parse("15:04", slotTime)
	if err != nil {
		return "", fmt.Errorf("schedule: invalid slot time %q: %w", slotTime, err)
	}
	end := start.Add(MeetingDuration)
	return Format12Hour(end.Hour(), end.Minute()), nil
}
