// Package web serves the sign-in, sign-up and dashboard pages.
package web

import (
	"context"
	"net/http"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/controller"
	"github.com/Goofygiraffe06/barber/internal/flow"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/notify"
	"github.com/Goofygiraffe06/barber/internal/ui"
	"github.com/Goofygiraffe06/barber/store/ephemeral"
)

// API is the remote scheduling backend.
type API interface {
	SignIn(ctx context.Context, creds models.Credentials) (models.SessionResponse, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) error
}

// Server holds the handler dependencies.
type Server struct {
	renderer     *ui.Renderer
	api          API
	signer       *auth.SessionSigner
	toasts       *ephemeral.ToastStore
	inflight     *controller.InFlight
	recorder     flow.Recorder
	cookieSecure bool
}

// Option configures a Server.
type Option func(*Server)

// WithRecorder attaches the submission outcome recorder.
func WithRecorder(r flow.Recorder) Option { return func(s *Server) { s.recorder = r } }

// WithSecureCookies marks every cookie Secure.
func WithSecureCookies(secure bool) Option { return func(s *Server) { s.cookieSecure = secure } }

// NewServer wires the handlers.
func NewServer(renderer *ui.Renderer, api API, signer *auth.SessionSigner, toasts *ephemeral.ToastStore, opts ...Option) *Server {
	s := &Server{
		renderer: renderer,
		api:      api,
		signer:   signer,
		toasts:   toasts,
		inflight: controller.NewInFlight(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) flowOptions() []flow.Option {
	if s.recorder == nil {
		return nil
	}
	return []flow.Option{flow.WithRecorder(s.recorder)}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, page ui.Page) {
	if err := s.renderer.Render(w, status, name, page); err != nil {
		logging.ErrorLog("render %s failed: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// queueToasts parks toasts for the next page view of this browser.
func (s *Server) queueToasts(w http.ResponseWriter, r *http.Request, toasts []notify.Toast) {
	if len(toasts) == 0 {
		return
	}
	key := s.flashKey(w, r)
	for _, t := range toasts {
		if err := s.toasts.Push(key, t); err != nil {
			logging.WarnLog("dropping toast %q: %v", t.Title, err)
		}
	}
}

// pendingToasts pops the toasts queued for this browser.
func (s *Server) pendingToasts(r *http.Request) []notify.Toast {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	return s.toasts.Pop(c.Value)
}
