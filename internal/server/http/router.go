// Package http exposes the backend over REST+JSON.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/server/http/handlers"
	"github.com/dmitrijs2005/portfolio/internal/server/http/middleware"
)

// Options are the router build parameters.
type Options struct {
	Logger logging.Logger
	// BasePath is where the API is mounted, e.g. "/api". Empty means root.
	BasePath    string
	CORSOrigins []string
	// Registry receives the request metrics and backs /metrics. Nil means a
	// fresh registry.
	Registry *prometheus.Registry
}

// NewRouter assembles the chi router with middleware and routes.
func NewRouter(h *handlers.Handlers, content []handlers.ContentRoutes, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	root := chi.NewRouter()

	// outer -> inner
	root.Use(
		middleware.Recover(logger),
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.NewMetrics(reg).Middleware(),
	)

	root.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	api := chi.NewRouter()
	api.Use(middleware.AuthBearer(h.Users))
	registerRoutes(api, h, content, middleware.RequireAdmin())

	if opts.BasePath != "" {
		root.Mount(opts.BasePath, api)
	} else {
		root.Mount("/", api)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return c.Handler(root)
}

// registerRoutes is the single place listing every REST endpoint.
func registerRoutes(r chi.Router, h *handlers.Handlers, content []handlers.ContentRoutes, admin middleware.Middleware) {
	r.Get("/health", h.Health)

	// auth
	r.Post("/auth/login", h.Login)

	// profiles, educations, skills, projects, experiences, social-links
	for _, c := range content {
		c.Mount(r, admin)
	}

	// contact
	r.Post("/contact/send", h.SendContactMessage)
	r.With(admin).Get("/contact", h.ListContactMessages)
	r.With(admin).Post("/contact/delete/{id}", h.DeleteContactMessage)
	r.With(admin).Post("/contact/read/{id}", h.MarkContactMessageRead)

	// uploads
	r.With(admin).Post("/uploads/presign", h.PresignUpload)
}
