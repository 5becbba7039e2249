package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Goofygiraffe06/barber/api"
	"github.com/Goofygiraffe06/barber/internal/apiclient"
	"github.com/Goofygiraffe06/barber/internal/auth"
	"github.com/Goofygiraffe06/barber/internal/manager"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *auth.SessionSigner) {
	t.Helper()

	userStore, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { userStore.Close() })

	mgr := manager.NewWorkManager(manager.WithDBWorkers(1), manager.WithCryptoWorkers(2))
	t.Cleanup(mgr.Close)

	signer := auth.NewSessionSigner("api-test-secret", "barber-api", time.Hour)
	srv := httptest.NewServer(api.NewRouter(userStore, mgr, signer, api.RouterConfig{
		AllowedOrigins: []string{"http://localhost:8080"},
		MaxBodyBytes:   1 << 16,
	}))
	t.Cleanup(srv.Close)
	return srv, signer
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRegisterHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	valid := models.CreateUserRequest{Name: "Jane", Email: "Jane@Example.com ", Password: "123456"}

	tests := []struct {
		name     string
		body     interface{}
		expected int
	}{
		{"valid", valid, http.StatusCreated},
		{"duplicate", valid, http.StatusConflict},
		{"short password", models.CreateUserRequest{Name: "Jo", Email: "jo@example.com", Password: "12345"}, http.StatusBadRequest},
		{"bad email", models.CreateUserRequest{Name: "Jo", Email: "nope", Password: "123456"}, http.StatusBadRequest},
		{"unknown field", map[string]string{"email": "x@example.com", "role": "admin"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/users", tt.body)
			if resp.StatusCode != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, resp.StatusCode)
			}
		})
	}
}

func TestRegisterResponseOmitsHash(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/users", models.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "123456"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["password_hash"]; ok {
		t.Error("hash must not be returned")
	}
	if raw["email"] != "jane@example.com" {
		t.Errorf("expected normalized email, got %v", raw["email"])
	}
}

func TestLoginHandler(t *testing.T) {
	srv, signer := newTestServer(t)
	postJSON(t, srv.URL+"/users", models.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "123456"})

	tests := []struct {
		name     string
		creds    models.Credentials
		expected int
	}{
		{"valid", models.Credentials{Email: "jane@example.com", Password: "123456"}, http.StatusOK},
		{"wrong password", models.Credentials{Email: "jane@example.com", Password: "654321"}, http.StatusUnauthorized},
		{"unknown user", models.Credentials{Email: "ghost@example.com", Password: "123456"}, http.StatusUnauthorized},
		{"missing password", models.Credentials{Email: "jane@example.com"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/sessions", tt.creds)
			if resp.StatusCode != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, resp.StatusCode)
			}
			if tt.expected != http.StatusOK {
				return
			}

			var session models.SessionResponse
			if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
				t.Fatalf("decode: %v", err)
			}
			sess, err := signer.Parse(session.Token)
			if err != nil {
				t.Fatalf("token does not verify: %v", err)
			}
			if sess.UserID != session.User.ID || session.User.Name != "Jane" {
				t.Errorf("unexpected session %+v for user %+v", sess, session.User)
			}
		})
	}
}

func TestClientAgainstDevAPI(t *testing.T) {
	srv, _ := newTestServer(t)
	client := apiclient.New(srv.URL, 5*time.Second)
	ctx := context.Background()

	req := models.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "123456"}
	if err := client.CreateUser(ctx, req); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := client.CreateUser(ctx, req); apiclient.KindOf(err) != apiclient.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}

	session, err := client.SignIn(ctx, models.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if session.Token == "" || session.User.Email != req.Email {
		t.Errorf("unexpected session %+v", session)
	}

	_, err = client.SignIn(ctx, models.Credentials{Email: req.Email, Password: "wrong-pass"})
	if apiclient.KindOf(err) != apiclient.KindCredentials {
		t.Errorf("expected credentials error, got %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/sessions", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:8080" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}
