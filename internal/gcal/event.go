package gcal

import calendar "google.golang.org/api/calendar/v3"

// PlaceholderLink is shown when no conference link could be extracted from
// the calendar response. The confirmation email carries the same text.
const PlaceholderLink = "El enlace se enviará en el correo de confirmación antes de la reunión."

// HangoutsMeet is the conference solution requested for every booking.
const HangoutsMeet = "hangoutsMeet"

// EventDateTime is the wire form of a zoned instant.
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Attendee identifies a meeting participant by email.
type Attendee struct {
	Email string `json:"email"`
}

// ConferenceSolutionKey selects the conference product to create.
type ConferenceSolutionKey struct {
	Type string `json:"type"`
}

// CreateConferenceRequest asks the calendar service to attach a video
// conference. RequestID must be unique per booking attempt; the service
// deduplicates conference creation on it.
type CreateConferenceRequest struct {
	RequestID             string                `json:"requestId"`
	ConferenceSolutionKey ConferenceSolutionKey `json:"conferenceSolutionKey"`
}

// ConferenceData wraps the conference creation request.
type ConferenceData struct {
	CreateRequest *CreateConferenceRequest `json:"createRequest,omitempty"`
}

// EventResource is the event-creation payload accepted by the proxy endpoint
// and built by the submission coordinator. It mirrors the calendar API's
// event shape so browser clients can post it directly.
type EventResource struct {
	Summary        string          `json:"summary"`
	Description    string          `json:"description"`
	Start          EventDateTime   `json:"start"`
	End            EventDateTime   `json:"end"`
	Attendees      []Attendee      `json:"attendees,omitempty"`
	ConferenceData *ConferenceData `json:"conferenceData,omitempty"`
}

// ToGoogle converts the resource into the calendar SDK's event type.
func (r *EventResource) ToGoogle() *calendar.Event {
	ev := &calendar.Event{
		Summary:     r.Summary,
		Description: r.Description,
		Start: &calendar.EventDateTime{
			DateTime: r.Start.DateTime,
			TimeZone: r.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: r.End.DateTime,
			TimeZone: r.End.TimeZone,
		},
	}
	for _, a := range r.Attendees {
		ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: a.Email})
	}
	if r.ConferenceData != nil && r.ConferenceData.CreateRequest != nil {
		ev.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: r.ConferenceData.CreateRequest.RequestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: r.ConferenceData.CreateRequest.ConferenceSolutionKey.Type,
				},
			},
		}
	}
	return ev
}

// MeetingLink extracts a joinable link from a created event, probing in
// priority order: the hangout link, the first video entry point, the event
// page link. When nothing matches it falls back to PlaceholderLink.
func MeetingLink(ev *calendar.Event) string {
	if ev == nil {
		return PlaceholderLink
	}
	if ev.HangoutLink != "" {
		return ev.HangoutLink
	}
	if ev.ConferenceData != nil {
		for _, ep := range ev.ConferenceData.EntryPoints {
			if ep != nil && ep.EntryPointType == "video" && ep.Uri != "" {
				return ep.Uri
			}
		}
	}
	if ev.HtmlLink != "" {
		return ev.HtmlLink
	}
	return PlaceholderLink
}
