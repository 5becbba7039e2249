package web

import (
	"context"
	"net/http"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/flow"
	"github.com/Goofygiraffe06/barber/internal/form"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/middleware"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/notify"
	"github.com/Goofygiraffe06/barber/internal/ui"
	"github.com/Goofygiraffe06/barber/internal/utils"
)

var busyToast = notify.Toast{
	Kind:        notify.KindInfo,
	Title:       "Hold on",
	Description: "Your previous submission is still being processed.",
}

func (s *Server) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, http.StatusOK, ui.PageSignIn, ui.SignInPage(nil, nil), nil)
}

func (s *Server) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, http.StatusOK, ui.PageSignUp, ui.SignUpPage(nil, nil), nil)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	values, err := form.FromRequest(r, form.FieldEmail, form.FieldPassword)
	if err != nil {
		logging.WarnLog("Sign-in failed: unreadable form: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	release, ok := s.inflight.Acquire(middleware.CSRFToken(r.Context()))
	if !ok {
		s.renderForm(w, r, http.StatusConflict, ui.PageSignIn, ui.SignInPage(values, nil), []notify.Toast{fresh(busyToast)})
		return
	}
	defer release()

	var session models.SessionResponse
	def := flow.SignIn(func(ctx context.Context, c models.Credentials) error {
		resp, err := s.api.SignIn(ctx, c)
		if err != nil {
			return err
		}
		session = resp
		return nil
	})

	resp := &responder{}
	res, err := flow.New(def, resp, resp, s.flowOptions()...).Submit(r.Context(), values)
	if err != nil {
		logging.ErrorLog("Sign-in flow refused submission: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch {
	case res.Errors != nil:
		s.renderForm(w, r, http.StatusUnprocessableEntity, ui.PageSignIn, ui.SignInPage(values, res.Errors), resp.toasts)
	case !resp.navigated():
		s.renderForm(w, r, http.StatusOK, ui.PageSignIn, ui.SignInPage(values, nil), resp.toasts)
	default:
		if err := s.setSession(w, session); err != nil {
			logging.ErrorLog("Sign-in failed: could not issue session [%s]: %v", utils.HashEmail(values.Get(form.FieldEmail)), err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		logging.InfoLog("Signed in [%s]", utils.HashEmail(values.Get(form.FieldEmail)))
		s.queueToasts(w, r, resp.toasts)
		resp.redirect(w, r)
	}
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	values, err := form.FromRequest(r, form.FieldName, form.FieldEmail, form.FieldPassword)
	if err != nil {
		logging.WarnLog("Sign-up failed: unreadable form: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	release, ok := s.inflight.Acquire(middleware.CSRFToken(r.Context()))
	if !ok {
		s.renderForm(w, r, http.StatusConflict, ui.PageSignUp, ui.SignUpPage(values, nil), []notify.Toast{fresh(busyToast)})
		return
	}
	defer release()

	resp := &responder{}
	res, err := flow.New(flow.SignUp(s.api.CreateUser), resp, resp, s.flowOptions()...).Submit(r.Context(), values)
	if err != nil {
		logging.ErrorLog("Sign-up flow refused submission: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch {
	case res.Errors != nil:
		s.renderForm(w, r, http.StatusUnprocessableEntity, ui.PageSignUp, ui.SignUpPage(values, res.Errors), resp.toasts)
	case !resp.navigated():
		s.renderForm(w, r, http.StatusOK, ui.PageSignUp, ui.SignUpPage(values, nil), resp.toasts)
	default:
		logging.InfoLog("Registered [%s]", utils.HashEmail(values.Get(form.FieldEmail)))
		s.queueToasts(w, r, resp.toasts)
		resp.redirect(w, r)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, flow.RouteSignIn, http.StatusSeeOther)
		return
	}
	page := ui.DashboardPage(sess.Name, sess.Email)
	page.CSRFToken = middleware.CSRFToken(r.Context())
	page.Toasts = s.pendingToasts(r)
	s.render(w, r, http.StatusOK, ui.PageDashboard, page)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.currentSession(r); ok {
		logging.InfoLog("Signed out [%s]", utils.HashEmail(sess.Email))
	}
	s.clearSession(w)
	http.Redirect(w, r, flow.RouteSignIn, http.StatusSeeOther)
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, name string, page ui.Page, toasts []notify.Toast) {
	page.CSRFToken = middleware.CSRFToken(r.Context())
	page.Toasts = append(s.pendingToasts(r), toasts...)
	s.render(w, r, status, name, page)
}

type sessionContextKey struct{}

func sessionFromContext(ctx context.Context) (auth.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(auth.Session)
	return sess, ok
}

// requireSession sends anonymous visitors to the sign-in page.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.currentSession(r)
		if !ok {
			http.Redirect(w, r, flow.RouteSignIn, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey{}, sess)))
	})
}

// redirectIfSignedIn sends signed-in visitors straight to the dashboard.
func (s *Server) redirectIfSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.currentSession(r); ok {
			http.Redirect(w, r, flow.RouteDashboard, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func fresh(t notify.Toast) notify.Toast {
	return notify.New(t.Kind, t.Title, t.Description)
}
