package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Goofygiraffe06/barber/internal/middleware"
)

func csrfHandler() http.Handler {
	mw := middleware.NewCSRFMiddleware(middleware.CSRFConfig{})
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.CSRFToken(r.Context())))
	}))
}

func TestCSRFIssuesCookieOnGet(t *testing.T) {
	rec := httptest.NewRecorder()
	csrfHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.CSRFCookieName {
		t.Fatalf("expected csrf cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if got := rec.Body.String(); got != cookies[0].Value {
		t.Errorf("context token %q does not match cookie %q", got, cookies[0].Value)
	}
}

func TestCSRFReusesExistingCookie(t *testing.T) {
	token := strings.Repeat("a", 64)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: token})

	rec := httptest.NewRecorder()
	csrfHandler().ServeHTTP(rec, req)

	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no new cookie")
	}
	if rec.Body.String() != token {
		t.Errorf("expected token %q, got %q", token, rec.Body.String())
	}
}

func TestCSRFValidatesUnsafeMethods(t *testing.T) {
	token := strings.Repeat("b", 64)

	tests := []struct {
		name     string
		cookie   string
		field    string
		header   string
		expected int
	}{
		{"matching form field", token, token, "", http.StatusOK},
		{"matching header", token, "", token, http.StatusOK},
		{"missing cookie", "", token, "", http.StatusForbidden},
		{"missing token", token, "", "", http.StatusForbidden},
		{"mismatch", token, strings.Repeat("c", 64), "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := url.Values{}
			if tt.field != "" {
				body.Set(middleware.CSRFFieldName, tt.field)
			}
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("X-CSRF-Token", tt.header)
			}

			rec := httptest.NewRecorder()
			csrfHandler().ServeHTTP(rec, req)

			if rec.Code != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
