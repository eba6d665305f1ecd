package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zondaerp/website/internal/gcal"
	"github.com/zondaerp/website/internal/notify"
	"github.com/zondaerp/website/internal/observability/metrics"
	"github.com/zondaerp/website/internal/schedule"
	"github.com/zondaerp/website/pkg/logging"
)

// ConfirmationSender delivers the meeting confirmation email.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, f notify.MeetingFields) error
}

// Coordinator turns a validated MeetingRequest into a calendar event and a
// confirmation email, and reports what actually happened. External failures
// degrade the outcome; they never fail the submission.
type Coordinator struct {
	calendar gcal.Creator
	notifier ConfirmationSender
	hours    schedule.BusinessHours
	attendee string // internal attendee copied on every meeting
	logger   *logging.Logger
	metrics  *metrics.BookingMetrics

	newRequestID func() string
	clock        func() time.Time
}

// NewCoordinator wires the submission flow. calendar may be nil when the
// integration is unconfigured; every submission then degrades to the
// placeholder link. metrics may be nil.
func NewCoordinator(calendar gcal.Creator, notifier ConfirmationSender, hours schedule.BusinessHours, attendee string, logger *logging.Logger, m *metrics.BookingMetrics) *Coordinator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Coordinator{
		calendar: calendar,
		notifier: notifier,
		hours:    hours,
		attendee: attendee,
		logger:   logger,
		metrics:  m,
		newRequestID: func() string {
			return "meeting-" + uuid.NewString()
		},
		clock: time.Now,
	}
}

// Submit runs the booking flow: build the event resource, attempt calendar
// creation once, extract a meeting link, attempt the confirmation email once,
// and return the combined outcome. An error is returned only for invalid
// input; degraded external calls are reported inside the outcome.
func (c *Coordinator) Submit(ctx context.Context, req MeetingRequest) (*BookingOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	started := c.clock()
	res, start, err := c.buildEventResource(req)
	if err != nil {
		return nil, err
	}

	link := gcal.PlaceholderLink
	created := false
	if c.calendar != nil {
		ev, err := c.calendar.CreateEvent(ctx, res)
		if err != nil {
			c.logger.Warn("calendar creation failed, continuing degraded", "error", err, "email", req.Email)
		} else {
			created = true
			link = gcal.MeetingLink(ev)
		}
	} else {
		c.logger.Warn("calendar integration not configured, continuing degraded")
	}

	timeRange, err := c.timeRange(req.Time)
	if err != nil {
		return nil, err
	}

	notified := false
	if c.notifier != nil {
		fields := notify.MeetingFields{
			ToEmail:         req.Email,
			ToName:          req.Name,
			MeetingDate:     spanishLongDate(start),
			MeetingTime:     timeRange,
			MeetingDuration: fmt.Sprintf("%d minutos", int(schedule.MeetingDuration.Minutes())),
			MeetingTimezone: "Hora de México (CST)",
			MeetingLink:     link,
			ClientName:      req.Name,
			ClientEmail:     req.Email,
			ClientPhone:     req.Phone,
			ClientCompany:   req.Company,
			ClientPlan:      req.Plan,
			ClientNotes:     req.Notes,
		}
		if err := c.notifier.SendConfirmation(ctx, fields); err != nil {
			c.logger.Warn("confirmation email failed, continuing degraded", "error", err, "email", req.Email)
		} else {
			notified = true
		}
	}

	outcome := &BookingOutcome{
		CalendarEventCreated: created,
		NotificationSent:     notified,
		MeetingLink:          link,
		MeetingLinkIsURL:     strings.HasPrefix(link, "http"),
		Date:                 spanishLongDate(start),
		TimeRange:            timeRange,
	}

	c.metrics.ObserveSubmission(created, notified, c.clock().Sub(started).Seconds())
	c.logger.Info("booking submission finished",
		"calendar_created", created,
		"notification_sent", notified,
		"link_is_url", outcome.MeetingLinkIsURL,
	)
	return outcome, nil
}

// buildEventResource derives the calendar payload from the request. The
// conference request id is regenerated on every attempt so a fresh submission
// never collides with a previous conference creation.
func (c *Coordinator) buildEventResource(req MeetingRequest) (*gcal.EventResource, time.Time, error) {
	loc, err := c.hours.Location()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("booking: resolve timezone: %w", err)
	}
	day, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("booking: parse date: %w", err)
	}
	hm, err := time.Parse("15:04", req.Time)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("booking: parse time: %w", err)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)
	end := start.Add(schedule.MeetingDuration)

	res := &gcal.EventResource{
		Summary:     fmt.Sprintf("Reunión ZONDA ERP - %s", req.Name),
		Description: buildDescription(req),
		Start:       gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: c.hours.TimeZone},
		End:         gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: c.hours.TimeZone},
		Attendees: []gcal.Attendee{
			{Email: req.Email},
			{Email: c.attendee},
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestID:             c.newRequestID(),
				ConferenceSolutionKey: gcal.ConferenceSolutionKey{Type: gcal.HangoutsMeet},
			},
		},
	}
	return res, start, nil
}

func (c *Coordinator) timeRange(slotTime string) (string, error) {
	hm, err := time.Parse("15:04", slotTime)
	if err != nil {
		return "", fmt.Errorf("booking: parse time: %w", err)
	}
	endLabel, err := schedule.EndOf(slotTime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s - %s", schedule.Format12Hour(hm.Hour(), hm.Minute()), endLabel), nil
}

func buildDescription(req MeetingRequest) string {
	var b strings.Builder
	b.WriteString("Reunión de consulta sobre ZONDA ERP\n\n")
	fmt.Fprintf(&b, "Cliente: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", req.Phone)
	}
	if req.Company != "" {
		fmt.Fprintf(&b, "Empresa: %s\n", req.Company)
	}
	if req.Plan != "" {
		fmt.Fprintf(&b, "Plan de interés: %s\n", req.Plan)
	}
	if req.Notes != "" {
		fmt.Fprintf(&b, "\nNotas: %s\n", req.Notes)
	}
	return b.String()
}

var spanishDays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// spanishLongDate renders t the way the site displays dates, e.g.
// "miércoles, 12 de junio de 2024".
func spanishLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishDays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
}
