package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Goofygiraffe06/barber/internal/form"
)

func TestSignUpSchemaEmptyValues(t *testing.T) {
	errs := form.SignUpSchema.Validate(form.Values{"name": "", "email": "", "password": ""})

	want := form.Errors{
		"name":     "Name is required",
		"email":    "E-mail is required",
		"password": "Password is required",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSignInSchemaMissingFields(t *testing.T) {
	errs := form.SignInSchema.Validate(nil)
	for _, field := range []string{"email", "password"} {
		if errs[field] == "" {
			t.Errorf("expected a message for %s", field)
		}
	}
	if errs.Has("name") {
		t.Error("sign-in must not validate name")
	}
}

func TestEmailShape(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"not an email", "not-an-email", true},
		{"missing domain", "user@", true},
		{"valid", "user@example.com", false},
		{"short valid", "a@b.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := form.SignInSchema.Validate(form.Values{"email": tc.email, "password": "x"})
			if got := errs.Has("email"); got != tc.wantErr {
				t.Errorf("email %q: expected error=%v, got %v (%q)", tc.email, tc.wantErr, got, errs["email"])
			}
			if tc.wantErr && errs["email"] != "Enter a valid e-mail" {
				t.Errorf("expected shape message, got %q", errs["email"])
			}
		})
	}
}

func TestSignUpPasswordLength(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"12345", "Password must be at least six characters"},
		{"123456", ""},
		{"çççççç", ""},
	}

	for _, tc := range tests {
		t.Run(tc.password, func(t *testing.T) {
			errs := form.SignUpSchema.Validate(form.Values{
				"name": "Ana", "email": "ana@example.com", "password": tc.password,
			})
			if errs["password"] != tc.want {
				t.Errorf("expected %q, got %q", tc.want, errs["password"])
			}
		})
	}
}

func TestSignInAcceptsShortPassword(t *testing.T) {
	errs := form.SignInSchema.Validate(form.Values{"email": "a@b.com", "password": "1"})
	if errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestSchemaFieldsOrder(t *testing.T) {
	want := []string{"name", "email", "password"}
	if diff := cmp.Diff(want, form.SignUpSchema.Fields()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}
