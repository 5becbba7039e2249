package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Goofygiraffe06/barber/internal/apiclient"
	"github.com/Goofygiraffe06/barber/internal/models"
)

func newServer(t *testing.T, handler http.HandlerFunc) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/", 2*time.Second)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestSignIn(t *testing.T) {
	want := models.SessionResponse{
		User:  models.User{ID: "u1", Name: "Ana", Email: "ana@example.com"},
		Token: "tok",
	}

	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("bad body: %v", err)
		}
		if creds.Email != "ana@example.com" || creds.Password != "123456" {
			t.Errorf("unexpected credentials %+v", creds)
		}
		writeJSON(w, http.StatusOK, want)
	})

	got, err := client.SignIn(context.Background(), models.Credentials{Email: "ana@example.com", Password: "123456"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateUserIgnoresBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("not json at all"))
	})

	if err := client.CreateUser(context.Background(), models.CreateUserRequest{Name: "Ana", Email: "a@b.com", Password: "123456"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantKnd apiclient.Kind
	}{
		{"unauthorized", http.StatusUnauthorized, apiclient.KindCredentials},
		{"conflict", http.StatusConflict, apiclient.KindConflict},
		{"bad request", http.StatusBadRequest, apiclient.KindValidation},
		{"server error", http.StatusBadGateway, apiclient.KindServer},
		{"teapot", http.StatusTeapot, apiclient.KindUnexpected},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, models.ErrorResponse{Error: "nope"})
			})

			_, err := client.SignIn(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})
			var apiErr *apiclient.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *apiclient.Error, got %T %v", err, err)
			}
			if apiErr.Kind != tc.wantKnd || apiErr.Status != tc.status || apiErr.Message != "nope" {
				t.Errorf("unexpected error %+v", apiErr)
			}
			if apiclient.KindOf(err) != tc.wantKnd {
				t.Errorf("KindOf = %s, want %s", apiclient.KindOf(err), tc.wantKnd)
			}
		})
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := apiclient.New(url, time.Second)
	err := client.CreateUser(context.Background(), models.CreateUserRequest{})
	if apiclient.KindOf(err) != apiclient.KindNetwork {
		t.Errorf("expected network kind, got %v", err)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := apiclient.KindOf(errors.New("boom")); got != apiclient.KindUnexpected {
		t.Errorf("expected unexpected, got %s", got)
	}
}
