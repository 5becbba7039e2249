package form_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Goofygiraffe06/barber/internal/form"
)

func TestFieldStateFocusBlur(t *testing.T) {
	t.Run("blur with value fills", func(t *testing.T) {
		var s form.FieldState
		s.Focus()
		if !s.Focused {
			t.Fatal("expected focused after Focus")
		}
		s.Blur("someone@example.com")
		if s.Focused || !s.Filled {
			t.Errorf("expected unfocused and filled, got %+v", s)
		}
	})

	t.Run("blur empty clears filled", func(t *testing.T) {
		s := form.FieldState{Filled: true}
		s.Focus()
		s.Blur("")
		if s.Focused || s.Filled {
			t.Errorf("expected unfocused and not filled, got %+v", s)
		}
	})

	t.Run("fail follows message", func(t *testing.T) {
		var s form.FieldState
		s.Fail("E-mail is required")
		if !s.Errored {
			t.Error("expected errored")
		}
		s.Fail("")
		if s.Errored {
			t.Error("expected errored cleared")
		}
	})
}

func TestSettled(t *testing.T) {
	got := form.Settled("abc", "")
	want := form.FieldState{Filled: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRequest(t *testing.T) {
	body := url.Values{
		"name":     {"  Ana  "},
		"email":    {" Ana@Example.COM "},
		"password": {" secret "},
		"extra":    {"ignored"},
	}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	values, err := form.FromRequest(req, form.SignUpSchema.Fields()...)
	if err != nil {
		t.Fatalf("FromRequest: %v", err)
	}

	want := form.Values{"name": "Ana", "email": "ana@example.com", "password": " secret "}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	if _, ok := values.Without(form.FieldPassword)["password"]; ok {
		t.Error("Without must drop the password")
	}
	if values["password"] == "" {
		t.Error("Without must not mutate the receiver")
	}
}
