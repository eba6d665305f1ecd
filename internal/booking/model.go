package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/zondaerp/website/internal/schedule"
)

// MeetingRequest is the snapshot of form fields plus the widget's selection,
// taken at submit time. It is never mutated after construction.
type MeetingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Plan    string `json:"plan,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Date    string `json:"date"` // "2006-01-02"
	Time    string `json:"time"` // "HH:MM", 24h
}

// Validate re-checks the widget's confirm gate server-side. The widget keeps
// the button disabled until these hold, but the endpoint is public.
func (r *MeetingRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("booking: name is required")
	}
	if !schedule.ValidEmail(strings.TrimSpace(r.Email)) {
		return fmt.Errorf("booking: email %q is not valid", r.Email)
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fmt.Errorf("booking: date %q is not valid: %w", r.Date, err)
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return fmt.Errorf("booking: time %q is not valid: %w", r.Time, err)
	}
	return nil
}

// BookingOutcome drives the terminal panel after a submission attempt. The
// date/time echoes are always present, whatever the external calls did.
type BookingOutcome struct {
	CalendarEventCreated bool   `json:"calendarEventCreated"`
	NotificationSent     bool   `json:"notificationSent"`
	MeetingLink          string `json:"meetingLink"`
	MeetingLinkIsURL     bool   `json:"meetingLinkIsUrl"`

	Date      string `json:"date"`      // long form display date
	TimeRange string `json:"timeRange"` // "10:00 AM - 10:30 AM"
}
