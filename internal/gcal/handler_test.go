package gcal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	calendar "google.golang.org/api/calendar/v3"
)

// fakeCreator records the last resource and returns a canned result.
type fakeCreator struct {
	lastRes *EventResource
	event   *calendar.Event
	err     error
}

func (f *fakeCreator) CreateEvent(_ context.Context, res *EventResource) (*calendar.Event, error) {
	f.lastRes = res
	return f.event, f.err
}

func postEvent(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateEvent(rec, req)
	return rec
}

const validEventBody = `{
	"summary": "Reunión ZONDA ERP - Ana Ruiz",
	"start": {"dateTime": "2024-06-12T10:00:00-06:00", "timeZone": "America/Mexico_City"},
	"end": {"dateTime": "2024-06-12T10:30:00-06:00", "timeZone": "America/Mexico_City"}
}`

func TestCreateEventProxySuccess(t *testing.T) {
	creator := &fakeCreator{event: &calendar.Event{Id: "ev1", HangoutLink: "https://meet.x/y"}}
	h := NewHandler(creator, nil)

	rec := postEvent(t, h, validEventBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var ev calendar.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &ev); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ev.HangoutLink != "https://meet.x/y" {
		t.Errorf("hangout link = %q", ev.HangoutLink)
	}
	if creator.lastRes == nil || creator.lastRes.Summary != "Reunión ZONDA ERP - Ana Ruiz" {
		t.Errorf("resource not forwarded: %+v", creator.lastRes)
	}
}

func TestCreateEventProxyEmptyBody(t *testing.T) {
	h := NewHandler(&fakeCreator{}, nil)

	rec := postEvent(t, h, "")
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Error || !strings.Contains(resp.Message, "No event data received") {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateEventProxyMissingTimes(t *testing.T) {
	h := NewHandler(&fakeCreator{}, nil)

	rec := postEvent(t, h, `{"summary":"no times"}`)
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Error {
		t.Error("expected application error for missing start/end")
	}
}

func TestCreateEventProxyUpstreamFailure(t *testing.T) {
	h := NewHandler(&fakeCreator{err: errors.New("insert boom")}, nil)

	rec := postEvent(t, h, validEventBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("proxy failures stay 200, got %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Error {
		t.Error("expected error flag on upstream failure")
	}
	if strings.Contains(resp.Message, "boom") {
		t.Error("upstream error details must not leak to the client")
	}
}

func TestCreateEventProxyNotConfigured(t *testing.T) {
	h := NewHandler(nil, nil)

	rec := postEvent(t, h, validEventBody)
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Error || !strings.Contains(resp.Message, "not configured") {
		t.Errorf("response = %+v", resp)
	}
}
