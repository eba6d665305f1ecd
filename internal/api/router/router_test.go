package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zondaerp/website/internal/booking"
	"github.com/zondaerp/website/internal/contact"
	"github.com/zondaerp/website/internal/gcal"
	"github.com/zondaerp/website/internal/helpcenter"
	"github.com/zondaerp/website/internal/notify"
	"github.com/zondaerp/website/internal/schedule"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	hours := schedule.DefaultBusinessHours()
	notifySvc := notify.NewService(notify.NewStubEmailSender(nil), nil)
	coordinator := booking.NewCoordinator(nil, notifySvc, hours, "contacto@zondaerp.com", nil, nil)

	reg := prometheus.NewRegistry()

	return New(&Config{
		BookingHandler:     booking.NewHandler(coordinator, hours, nil, nil),
		EventProxy:         gcal.NewHandler(nil, nil),
		ContactHandler:     contact.NewHandler(notifySvc, "contacto@zondaerp.com", nil, nil),
		HelpHandler:        helpcenter.NewHandler(helpcenter.NewIndex(helpcenter.DefaultArticles()), nil),
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: []string{"*"},
	})
}

func TestRoutesRegistered(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/schedule/grid", http.StatusOK},
		{http.MethodGet, "/api/help/search?q=factura", http.StatusOK},
		{http.MethodGet, "/api/schedule/slots", http.StatusBadRequest},
		{http.MethodPost, "/api/meetings", http.StatusBadRequest},
		{http.MethodPost, "/api/events", http.StatusOK}, // proxy always answers JSON
		{http.MethodPost, "/api/contact", http.StatusBadRequest},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.want)
		}
	}
}

func TestCORSHeadersOnAPIRoutes(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	req.Header.Set("Origin", "https://zondaerp.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://zondaerp.com" {
		t.Errorf("allow origin = %q", got)
	}
}
