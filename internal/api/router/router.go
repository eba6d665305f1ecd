package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zondaerp/website/internal/booking"
	"github.com/zondaerp/website/internal/contact"
	"github.com/zondaerp/website/internal/gcal"
	"github.com/zondaerp/website/internal/helpcenter"
	httpmiddleware "github.com/zondaerp/website/internal/http/middleware"
	"github.com/zondaerp/website/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	BookingHandler     *booking.Handler
	EventProxy         *gcal.Handler
	ContactHandler     *contact.Handler
	HelpHandler        *helpcenter.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// WebRoot, when set, serves the static marketing pages from disk.
	WebRoot string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.BookingHandler != nil {
			api.Route("/schedule", func(s chi.Router) {
				s.Get("/grid", cfg.BookingHandler.Grid)
				s.Get("/slots", cfg.BookingHandler.Slots)
			})
			api.Post("/meetings", cfg.BookingHandler.Submit)
		}
		if cfg.EventProxy != nil {
			api.Post("/events", cfg.EventProxy.CreateEvent)
		}
		if cfg.ContactHandler != nil {
			api.Post("/contact", cfg.ContactHandler.Submit)
		}
		if cfg.HelpHandler != nil {
			api.Get("/help/search", cfg.HelpHandler.Search)
		}
	})

	if cfg.WebRoot != "" {
		fs := http.FileServer(http.Dir(cfg.WebRoot))
		r.Handle("/*", fs)
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
