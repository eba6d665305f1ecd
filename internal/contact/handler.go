// Package contact backs the marketing site's contact form.
package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/zondaerp/website/internal/notify"
	"github.com/zondaerp/website/internal/observability/metrics"
	"github.com/zondaerp/website/internal/schedule"
	"github.com/zondaerp/website/pkg/logging"
)

// Message is a contact-form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Validate checks the required fields.
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("contact: name is required")
	}
	if !schedule.ValidEmail(strings.TrimSpace(m.Email)) {
		return fmt.Errorf("contact: email %q is not valid", m.Email)
	}
	if strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("contact: message is required")
	}
	return nil
}

// Sender forwards a contact message to the sales inbox.
type Sender interface {
	SendContactMessage(ctx context.Context, f notify.ContactFields) error
}

// Handler exposes POST /api/contact.
type Handler struct {
	sender    Sender
	recipient string
	logger    *logging.Logger
	metrics   *metrics.BookingMetrics
}

// NewHandler creates the contact handler. metrics may be nil.
func NewHandler(sender Sender, recipient string, logger *logging.Logger, m *metrics.BookingMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{sender: sender, recipient: recipient, logger: logger, metrics: m}
}

type response struct {
	Sent    bool   `json:"sent"`
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Submit validates the message and forwards it. Delivery failure is reported
// in the body, not as an HTTP error, so the page can offer the mailto
// fallback.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		h.writeJSON(w, http.StatusBadRequest, response{Error: true, Message: "Invalid request body"})
		return
	}
	if err := msg.Validate(); err != nil {
		h.writeJSON(w, http.StatusBadRequest, response{Error: true, Message: err.Error()})
		return
	}

	err := h.sender.SendContactMessage(r.Context(), notify.ContactFields{
		RecipientEmail: h.recipient,
		Name:           msg.Name,
		Email:          msg.Email,
		Phone:          msg.Phone,
		Subject:        msg.Subject,
		Message:        msg.Message,
	})
	if err != nil {
		h.logger.Warn("contact message delivery failed", "error", err, "from", msg.Email)
		h.metrics.ObserveContact(false)
		h.writeJSON(w, http.StatusOK, response{Sent: false})
		return
	}

	h.metrics.ObserveContact(true)
	h.writeJSON(w, http.StatusOK, response{Sent: true})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
