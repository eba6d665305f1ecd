package gcal

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/zondaerp/website/pkg/logging"
)

// ErrorResponse is the application-level failure shape the proxy returns.
// Browser clients check the error flag rather than the HTTP status.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Handler exposes the create-event proxy consumed by the scheduling widget.
type Handler struct {
	creator Creator
	logger  *logging.Logger
}

// NewHandler creates the proxy handler. creator may be nil when the calendar
// integration is not configured; the proxy then reports an application error.
func NewHandler(creator Creator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{creator: creator, logger: logger}
}

// CreateEvent handles POST /api/events. The response is always JSON: the
// created event on success, or {error:true, message} on any failure. Status
// stays 200 so loosely-coded clients that only parse the body keep working.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var res EventResource
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		if errors.Is(err, io.EOF) {
			h.writeJSON(w, ErrorResponse{Error: true, Message: "No event data received. Send JSON via POST."})
			return
		}
		h.logger.Error("failed to decode event payload", "error", err)
		h.writeJSON(w, ErrorResponse{Error: true, Message: "Malformed event payload."})
		return
	}
	if res.Start.DateTime == "" || res.End.DateTime == "" {
		h.writeJSON(w, ErrorResponse{Error: true, Message: "Event start and end are required."})
		return
	}

	if h.creator == nil {
		h.writeJSON(w, ErrorResponse{Error: true, Message: "Calendar integration is not configured."})
		return
	}

	created, err := h.creator.CreateEvent(r.Context(), &res)
	if err != nil {
		h.writeJSON(w, ErrorResponse{Error: true, Message: "Could not create the calendar event."})
		return
	}

	h.writeJSON(w, created)
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
