package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the scheduling flow.
type BookingMetrics struct {
	submissionsTotal *prometheus.CounterVec
	submitLatency    prometheus.Histogram
	availability     *prometheus.CounterVec
	contactTotal     *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zonda",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total meeting submissions by external-call outcome",
		}, []string{"calendar", "email"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "zonda",
			Subsystem: "booking",
			Name:      "submit_latency_seconds",
			Help:      "Latency of the full submission flow",
			Buckets:   prometheus.DefBuckets,
		}),
		availability: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zonda",
			Subsystem: "booking",
			Name:      "availability_requests_total",
			Help:      "Total calendar grid and slot lookups",
		}, []string{"kind"}),
		contactTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zonda",
			Subsystem: "contact",
			Name:      "messages_total",
			Help:      "Total contact form submissions by delivery status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.submitLatency, m.availability, m.contactTotal)
	return m
}

func (m *BookingMetrics) ObserveSubmission(calendarCreated, emailSent bool, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome(calendarCreated), outcome(emailSent)).Inc()
	m.submitLatency.Observe(seconds)
}

func (m *BookingMetrics) ObserveAvailability(kind string) {
	if m == nil {
		return
	}
	m.availability.WithLabelValues(kind).Inc()
}

func (m *BookingMetrics) ObserveContact(sent bool) {
	if m == nil {
		return
	}
	status := "failed"
	if sent {
		status = "sent"
	}
	m.contactTotal.WithLabelValues(status).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "degraded"
}
