package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/zondaerp/website/internal/gcal"
	"github.com/zondaerp/website/internal/notify"
	"github.com/zondaerp/website/internal/schedule"
)

type fakeCalendar struct {
	calls     int
	resources []*gcal.EventResource
	event     *calendar.Event
	err       error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, res *gcal.EventResource) (*calendar.Event, error) {
	f.calls++
	f.resources = append(f.resources, res)
	return f.event, f.err
}

type fakeNotifier struct {
	calls  int
	fields []notify.MeetingFields
	err    error
}

func (f *fakeNotifier) SendConfirmation(_ context.Context, fields notify.MeetingFields) error {
	f.calls++
	f.fields = append(f.fields, fields)
	return f.err
}

func testHours() schedule.BusinessHours {
	return schedule.BusinessHours{StartHour: 9, EndHour: 15, TimeZone: "America/Mexico_City"}
}

func validRequest() MeetingRequest {
	return MeetingRequest{
		Name:  "Ana Ruiz",
		Email: "ana@example.com",
		Date:  "2024-06-12",
		Time:  "10:00",
	}
}

func newTestCoordinator(cal gcal.Creator, n ConfirmationSender) *Coordinator {
	return NewCoordinator(cal, n, testHours(), "contacto@zondaerp.com", nil, nil)
}

func TestSubmitSuccess(t *testing.T) {
	cal := &fakeCalendar{event: &calendar.Event{HangoutLink: "https://meet.x/y"}}
	n := &fakeNotifier{}
	c := newTestCoordinator(cal, n)

	outcome, err := c.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, outcome.CalendarEventCreated)
	assert.True(t, outcome.NotificationSent)
	assert.Equal(t, "https://meet.x/y", outcome.MeetingLink)
	assert.True(t, outcome.MeetingLinkIsURL)
	assert.Equal(t, "miércoles, 12 de junio de 2024", outcome.Date)
	assert.Equal(t, "10:00 AM - 10:30 AM", outcome.TimeRange)

	assert.Equal(t, 1, cal.calls, "calendar must be attempted exactly once")
	assert.Equal(t, 1, n.calls, "notification must be attempted exactly once")
}

func TestSubmitBuildsDeterministicEvent(t *testing.T) {
	cal := &fakeCalendar{event: &calendar.Event{}}
	n := &fakeNotifier{}
	c := newTestCoordinator(cal, n)

	req := validRequest()
	req.Phone = "5512345678"
	req.Company = "Ruiz SA"
	req.Plan = "Profesional"
	req.Notes = "Interesados en inventario"

	_, err := c.Submit(context.Background(), req)
	require.NoError(t, err)

	res := cal.resources[0]
	assert.Equal(t, "Reunión ZONDA ERP - Ana Ruiz", res.Summary)
	assert.Contains(t, res.Description, "Cliente: Ana Ruiz")
	assert.Contains(t, res.Description, "Teléfono: 5512345678")
	assert.Contains(t, res.Description, "Empresa: Ruiz SA")
	assert.Contains(t, res.Description, "Plan de interés: Profesional")
	assert.Contains(t, res.Description, "Notas: Interesados en inventario")

	start, err := time.Parse(time.RFC3339, res.Start.DateTime)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, res.End.DateTime)
	require.NoError(t, err)
	assert.Equal(t, schedule.MeetingDuration, end.Sub(start), "end must be start plus the fixed duration")
	assert.Equal(t, 10, start.Hour())
	assert.Equal(t, "America/Mexico_City", res.Start.TimeZone)

	require.Len(t, res.Attendees, 2)
	assert.Equal(t, "ana@example.com", res.Attendees[0].Email)
	assert.Equal(t, "contacto@zondaerp.com", res.Attendees[1].Email)

	require.NotNil(t, res.ConferenceData)
	assert.Equal(t, gcal.HangoutsMeet, res.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
	assert.NotEmpty(t, res.ConferenceData.CreateRequest.RequestID)
}

func TestSubmitCalendarErrorDegrades(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("calendar down")}
	n := &fakeNotifier{}
	c := newTestCoordinator(cal, n)

	outcome, err := c.Submit(context.Background(), validRequest())
	require.NoError(t, err, "calendar failure must not fail the submission")

	assert.False(t, outcome.CalendarEventCreated)
	assert.Equal(t, gcal.PlaceholderLink, outcome.MeetingLink)
	assert.False(t, outcome.MeetingLinkIsURL)
	assert.Equal(t, 1, n.calls, "notification still attempted after calendar failure")
	assert.Equal(t, gcal.PlaceholderLink, n.fields[0].MeetingLink, "email carries the placeholder link")
	assert.True(t, outcome.NotificationSent)
}

func TestSubmitNotificationErrorDegrades(t *testing.T) {
	cal := &fakeCalendar{event: &calendar.Event{HangoutLink: "https://meet.x/y"}}
	n := &fakeNotifier{err: errors.New("smtp down")}
	c := newTestCoordinator(cal, n)

	outcome, err := c.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, outcome.CalendarEventCreated)
	assert.False(t, outcome.NotificationSent)
	assert.Equal(t, "https://meet.x/y", outcome.MeetingLink)
	assert.Equal(t, 1, n.calls, "failed notification must not be retried")
}

func TestSubmitBothExternalCallsFail(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("calendar down")}
	n := &fakeNotifier{err: errors.New("smtp down")}
	c := newTestCoordinator(cal, n)

	outcome, err := c.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, outcome.CalendarEventCreated)
	assert.False(t, outcome.NotificationSent)
	assert.Equal(t, gcal.PlaceholderLink, outcome.MeetingLink)
	assert.Equal(t, "miércoles, 12 de junio de 2024", outcome.Date)
	assert.Equal(t, "10:00 AM - 10:30 AM", outcome.TimeRange)
	assert.Equal(t, 1, cal.calls)
	assert.Equal(t, 1, n.calls)
}

func TestSubmitFreshConferenceTokenPerAttempt(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("calendar down")}
	c := newTestCoordinator(cal, &fakeNotifier{})

	_, err := c.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = c.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, cal.resources, 2)
	first := cal.resources[0].ConferenceData.CreateRequest.RequestID
	second := cal.resources[1].ConferenceData.CreateRequest.RequestID
	assert.NotEqual(t, first, second, "each attempt needs a fresh conference request id")
}

func TestSubmitWithoutCalendarIntegration(t *testing.T) {
	n := &fakeNotifier{}
	c := newTestCoordinator(nil, n)

	outcome, err := c.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, outcome.CalendarEventCreated)
	assert.Equal(t, gcal.PlaceholderLink, outcome.MeetingLink)
	assert.Equal(t, 1, n.calls)
}

func TestSubmitRejectsInvalidRequests(t *testing.T) {
	cal := &fakeCalendar{}
	n := &fakeNotifier{}
	c := newTestCoordinator(cal, n)

	cases := []struct {
		name string
		req  MeetingRequest
	}{
		{"missing name", MeetingRequest{Email: "ana@example.com", Date: "2024-06-12", Time: "10:00"}},
		{"bad email", MeetingRequest{Name: "Ana", Email: "ana@example", Date: "2024-06-12", Time: "10:00"}},
		{"bad date", MeetingRequest{Name: "Ana", Email: "ana@example.com", Date: "12/06/2024", Time: "10:00"}},
		{"bad time", MeetingRequest{Name: "Ana", Email: "ana@example.com", Date: "2024-06-12", Time: "10:70"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Submit(context.Background(), tc.req)
			require.Error(t, err)
		})
	}

	assert.Zero(t, cal.calls, "invalid requests must never reach the calendar")
	assert.Zero(t, n.calls, "invalid requests must never trigger email")
}

func TestSubmitNotifierFieldsAreComplete(t *testing.T) {
	cal := &fakeCalendar{event: &calendar.Event{HangoutLink: "https://meet.x/y"}}
	n := &fakeNotifier{}
	c := newTestCoordinator(cal, n)

	req := validRequest()
	req.Phone = "5512345678"
	_, err := c.Submit(context.Background(), req)
	require.NoError(t, err)

	f := n.fields[0]
	assert.Equal(t, "ana@example.com", f.ToEmail)
	assert.Equal(t, "Ana Ruiz", f.ToName)
	assert.Equal(t, "miércoles, 12 de junio de 2024", f.MeetingDate)
	assert.Equal(t, "10:00 AM - 10:30 AM", f.MeetingTime)
	assert.Equal(t, "30 minutos", f.MeetingDuration)
	assert.Equal(t, "Hora de México (CST)", f.MeetingTimezone)
	assert.Equal(t, "https://meet.x/y", f.MeetingLink)
	assert.Equal(t, "5512345678", f.ClientPhone)
}

func TestSpanishLongDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	d := time.Date(2024, time.June, 10, 0, 0, 0, 0, loc)
	assert.Equal(t, "lunes, 10 de junio de 2024", spanishLongDate(d))
}
