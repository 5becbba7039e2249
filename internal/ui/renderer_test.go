package ui_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Goofygiraffe06/barber/internal/form"
	"github.com/Goofygiraffe06/barber/internal/notify"
	"github.com/Goofygiraffe06/barber/internal/ui"
)

func newRenderer(t *testing.T) *ui.Renderer {
	t.Helper()
	r, err := ui.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderSignInWithErrors(t *testing.T) {
	r := newRenderer(t)

	values := form.Values{form.FieldEmail: "not-an-email", form.FieldPassword: "secret-pass"}
	errs := form.SignInSchema.Validate(values)

	page := ui.SignInPage(values, errs)
	page.CSRFToken = "tok123"

	rec := httptest.NewRecorder()
	if err := r.Render(rec, http.StatusUnprocessableEntity, ui.PageSignIn, page); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`value="not-an-email"`,
		`title="Enter a valid e-mail"`,
		`aria-label="Enter a valid e-mail"`,
		"is-errored",
		`value="tok123"`,
		`href="/register"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
	if strings.Contains(body, "secret-pass") {
		t.Error("password must not be echoed")
	}
}

func TestRenderFirstViewHasNoState(t *testing.T) {
	r := newRenderer(t)

	rec := httptest.NewRecorder()
	if err := r.Render(rec, http.StatusOK, ui.PageSignUp, ui.SignUpPage(nil, nil)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := rec.Body.String()
	for _, unwanted := range []string{"is-errored", "is-filled", "is-focused", "field-error"} {
		if strings.Contains(body, unwanted) {
			t.Errorf("unexpected %q on first view", unwanted)
		}
	}
	if !strings.Contains(body, `name="name"`) {
		t.Error("expected name field on sign-up page")
	}
}

func TestRenderToasts(t *testing.T) {
	r := newRenderer(t)

	page := ui.SignInPage(nil, nil)
	page.Toasts = []notify.Toast{notify.New(notify.KindSuccess, "User registered", "You can now sign in.")}

	rec := httptest.NewRecorder()
	if err := r.Render(rec, http.StatusOK, ui.PageSignIn, page); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "toast-success") || !strings.Contains(body, "User registered") {
		t.Errorf("expected success toast in body")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newRenderer(t)
	if err := r.Render(httptest.NewRecorder(), http.StatusOK, "missing", ui.Page{}); err == nil {
		t.Error("expected error for unknown page")
	}
}

func TestAssetsHandler(t *testing.T) {
	r := newRenderer(t)
	srv := httptest.NewServer(http.StripPrefix("/static/", r.AssetsHandler()))
	defer srv.Close()

	tests := []struct {
		path     string
		contains string
	}{
		{"/static/app.css", "#cc7300"},
		{"/static/app.js", "is-focused"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}
			b, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(b), tt.contains) {
				t.Errorf("expected %s to contain %q", tt.path, tt.contains)
			}
		})
	}
}
