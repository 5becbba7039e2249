package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/manager"
	"github.com/Goofygiraffe06/barber/internal/middleware"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/store"
)

// RouterConfig configures the development API router.
type RouterConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// NewRouter mounts POST /users and POST /sessions.
func NewRouter(userStore *store.SQLiteStore, mgr *manager.WorkManager, signer *auth.SessionSigner, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewLoggingMiddleware(nil))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	if cfg.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(cfg.MaxBodyBytes))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
	})
	r.Post("/users", RegisterHandler(userStore, mgr))
	r.Post("/sessions", LoginHandler(userStore, mgr, signer))

	return r
}
