package web

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/models"
)

const (
	sessionCookieName = "barber_session"
	flashCookieName   = "barber_flash"
	flashMaxAge       = 3600
)

// flashKey returns the browser's flash key, issuing a cookie when missing.
func (s *Server) flashKey(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(flashCookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	key := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}

func (s *Server) setSession(w http.ResponseWriter, resp models.SessionResponse) error {
	token, err := s.signer.Issue(auth.Session{
		UserID:   resp.User.ID,
		Name:     resp.User.Name,
		Email:    resp.User.Email,
		APIToken: resp.Token,
	})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.signer.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentSession returns the verified session of the request, if any.
func (s *Server) currentSession(r *http.Request) (auth.Session, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return auth.Session{}, false
	}
	sess, err := s.signer.Parse(c.Value)
	if err != nil {
		logging.DebugLog("rejecting session cookie: %v", err)
		return auth.Session{}, false
	}
	return sess, true
}
