package booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zondaerp/website/internal/observability/metrics"
	"github.com/zondaerp/website/internal/schedule"
	"github.com/zondaerp/website/pkg/logging"
)

// Handler wires the scheduling widget's HTTP surface to the domain code.
type Handler struct {
	coordinator *Coordinator
	hours       schedule.BusinessHours
	logger      *logging.Logger
	metrics     *metrics.BookingMetrics

	clock func() time.Time
}

// NewHandler creates the booking handler. metrics may be nil.
func NewHandler(coordinator *Coordinator, hours schedule.BusinessHours, logger *logging.Logger, m *metrics.BookingMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		coordinator: coordinator,
		hours:       hours,
		logger:      logger,
		metrics:     m,
		clock:       time.Now,
	}
}

type errorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Grid handles GET /api/schedule/grid?year=&month=[&selected=YYYY-MM-DD].
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	loc, err := h.hours.Location()
	if err != nil {
		h.logger.Error("invalid business timezone", "error", err)
		http.Error(w, "availability unavailable", http.StatusInternalServerError)
		return
	}
	now := h.clock().In(loc)

	year := now.Year()
	month := now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "year must be numeric")
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			h.writeError(w, http.StatusBadRequest, "month must be 1-12")
			return
		}
		month = time.Month(m)
	}

	var selected *time.Time
	if v := r.URL.Query().Get("selected"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, loc)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "selected must be YYYY-MM-DD")
			return
		}
		selected = &d
	}

	h.metrics.ObserveAvailability("grid")
	h.writeJSON(w, http.StatusOK, schedule.Grid(year, month, now, selected))
}

// Slots handles GET /api/schedule/slots?date=YYYY-MM-DD.
func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	loc, err := h.hours.Location()
	if err != nil {
		h.logger.Error("invalid business timezone", "error", err)
		http.Error(w, "availability unavailable", http.StatusInternalServerError)
		return
	}

	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	now := h.clock()
	if !schedule.Selectable(date, now.In(loc)) {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("date %s is not bookable", raw))
		return
	}

	slots, err := schedule.SlotsFor(date, h.hours, now)
	if err != nil {
		h.logger.Error("slot generation failed", "error", err, "date", raw)
		http.Error(w, "availability unavailable", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveAvailability("slots")
	h.writeJSON(w, http.StatusOK, map[string]any{
		"date":  raw,
		"slots": slots,
	})
}

// Submit handles POST /api/meetings. Validation failures return 400 with an
// inline message; degraded external calls still return 200 with the outcome
// so the widget can render its warning banners.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req MeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode meeting request", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.coordinator.Submit(r.Context(), req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorBody{Error: true, Message: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
