package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/logging"
)

const (
	// CSRFCookieName holds the per-browser token.
	CSRFCookieName = "csrf_token"
	// CSRFFieldName is the hidden form field carrying the token.
	CSRFFieldName  = "csrf_token"
	csrfHeaderName = "X-CSRF-Token"
	csrfTokenBytes = 32
	csrfMaxAge     = 86400
)

type csrfContextKey struct{}

// CSRFConfig configures the CSRF middleware.
type CSRFConfig struct {
	CookieSecure bool
}

// NewCSRFMiddleware implements the double-submit cookie pattern. Safe methods
// get a token cookie when missing; state-changing methods must echo the
// cookie value in the form field or the X-CSRF-Token header.
func NewCSRFMiddleware(config CSRFConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CSRFCookieName)
			hasCookie := err == nil && len(cookie.Value) == 2*csrfTokenBytes

			if isSafeMethod(r.Method) {
				token := ""
				if hasCookie {
					token = cookie.Value
				} else {
					token, err = auth.GenerateToken(csrfTokenBytes)
					if err != nil {
						logging.ErrorLog("CSRF token generation failed: %v", err)
						http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
						return
					}
					setCSRFCookie(w, token, config)
				}
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), csrfContextKey{}, token)))
				return
			}

			if !hasCookie {
				logging.WarnLog("CSRF validation failed: missing cookie token %s %s", r.Method, r.URL.Path)
				http.Error(w, "CSRF token validation failed", http.StatusForbidden)
				return
			}

			submitted := r.Header.Get(csrfHeaderName)
			if submitted == "" {
				submitted = r.PostFormValue(CSRFFieldName)
			}
			if !constantTimeEquals(submitted, cookie.Value) {
				logging.WarnLog("CSRF validation failed: token mismatch %s %s", r.Method, r.URL.Path)
				http.Error(w, "CSRF token validation failed", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), csrfContextKey{}, cookie.Value)))
		})
	}
}

// CSRFToken returns the token of the current request, or "" outside the middleware.
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(csrfContextKey{}).(string)
	return token
}

func setCSRFCookie(w http.ResponseWriter, token string, config CSRFConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfMaxAge,
		HttpOnly: true,
		Secure:   config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// constantTimeEquals compares two strings in constant time to prevent timing attacks.
func constantTimeEquals(a, b string) bool {
	if len(a) != len(b) || a == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
