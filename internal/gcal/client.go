package gcal

import (
	"context"
	"fmt"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/zondaerp/website/pkg/logging"
)

// Creator inserts an event into the external calendar. The concrete Client
// talks to Google Calendar; tests substitute in-memory fakes.
type Creator interface {
	CreateEvent(ctx context.Context, res *EventResource) (*calendar.Event, error)
}

// Client creates events on a shared team calendar through a service account.
type Client struct {
	svc        *calendar.Service
	calendarID string
	logger     *logging.Logger
}

// NewClient builds a calendar client from service-account credentials.
// calendarID is the target calendar, typically a group calendar address.
func NewClient(ctx context.Context, credentialsFile, calendarID string, logger *logging.Logger) (*Client, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("gcal: credentials file not configured")
	}
	if calendarID == "" {
		return nil, fmt.Errorf("gcal: calendar id not configured")
	}
	if logger == nil {
		logger = logging.Default()
	}

	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gcal: init calendar service: %w", err)
	}

	return &Client{svc: svc, calendarID: calendarID, logger: logger}, nil
}

// CreateEvent inserts the event with conference creation enabled and returns
// the created event as the service reported it.
func (c *Client) CreateEvent(ctx context.Context, res *EventResource) (*calendar.Event, error) {
	created, err := c.svc.Events.Insert(c.calendarID, res.ToGoogle()).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		c.logger.Error("calendar insert failed", "error", err, "summary", res.Summary)
		return nil, fmt.Errorf("gcal: insert event: %w", err)
	}

	c.logger.Info("calendar event created",
		"event_id", created.Id,
		"summary", created.Summary,
		"has_hangout_link", created.HangoutLink != "",
	)
	return created, nil
}
