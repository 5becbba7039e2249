package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Goofygiraffe06/barber/internal/middleware"
	"github.com/Goofygiraffe06/barber/internal/models"
)

var errNoRenderer = errors.New("web: renderer is required")

// RouterConfig holds the cross-cutting pieces mounted around the pages.
type RouterConfig struct {
	MaxBodyBytes   int64
	CSRF           middleware.CSRFConfig
	SubmitLimiter  *middleware.RateLimiter
	StatusRecorder middleware.StatusRecorder
	MetricsHandler http.Handler
}

// Router builds the chi router for the web front.
func (s *Server) Router(cfg RouterConfig) (http.Handler, error) {
	if s.renderer == nil {
		return nil, errNoRenderer
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.StatusRecorder))
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewSecurityHeadersMiddleware())
	if cfg.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(cfg.MaxBodyBytes))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.StatusResponse{Status: "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", s.renderer.AssetsHandler()))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRFMiddleware(cfg.CSRF))

		r.Group(func(r chi.Router) {
			r.Use(s.redirectIfSignedIn)
			r.Get("/", s.handleSignInPage)
			r.Get("/register", s.handleSignUpPage)

			r.Group(func(r chi.Router) {
				if cfg.SubmitLimiter != nil {
					r.Use(cfg.SubmitLimiter.Middleware())
				}
				r.Post("/", s.handleSignIn)
				r.Post("/register", s.handleSignUp)
			})
		})

		r.With(s.requireSession).Get("/dashboard", s.handleDashboard)
		r.Post("/signout", s.handleSignOut)
	})

	return r, nil
}
