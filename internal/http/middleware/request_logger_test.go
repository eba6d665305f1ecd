package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/zondaerp/website/pkg/logging"
)

func TestRequestLoggerUsesChiRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter("info", &buf)

	var chiID string
	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		chiID = chimiddleware.GetReqID(r.Context())
	})
	h := chimiddleware.RequestID(RequestLogger(logger)(inner))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if chiID == "" {
		t.Fatal("chi request id was not set")
	}
	if !strings.Contains(buf.String(), chiID) {
		t.Errorf("log lines should carry chi's request id %q:\n%s", chiID, buf.String())
	}
}

func TestRequestLoggerFallsBackToHeader(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter("info", &buf)

	h := RequestLogger(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-from-header")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), "req-from-header") {
		t.Errorf("log lines should fall back to the header id:\n%s", buf.String())
	}
}
