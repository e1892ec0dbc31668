package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/luvium/lead-intake/internal/http/middleware"
	"github.com/luvium/lead-intake/internal/leads"
	"github.com/luvium/lead-intake/internal/portal"
	"github.com/luvium/lead-intake/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	PortalHandler      *portal.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured.
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

	r.Get("/health", cfg.LeadsHandler.Health)

	r.Route("/leads", func(r chi.Router) {
		r.Post("/", cfg.LeadsHandler.SubmitLead)
		r.Get("/", cfg.LeadsHandler.ListLeads)
	})

	if cfg.PortalHandler != nil {
		r.Post("/portal/leads", cfg.PortalHandler.ProcessLead)
	}

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
