// Package apiclient talks to the remote scheduling API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Goofygiraffe06/barber/internal/logging"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/utils"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 4 << 10

// Client calls the scheduling API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New returns a client rooted at baseURL. timeout bounds each call.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logging.Named("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignIn authenticates credentials via POST /sessions.
func (c *Client) SignIn(ctx context.Context, creds models.Credentials) (models.SessionResponse, error) {
	var out models.SessionResponse
	if err := c.post(ctx, "signin", "/sessions", creds, &out); err != nil {
		return models.SessionResponse{}, err
	}
	c.log.Debug("signed in", zap.String("email", utils.HashEmail(creds.Email)))
	return out, nil
}

// CreateUser registers a user via POST /users. The response body is ignored.
func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	if err := c.post(ctx, "create_user", "/users", req, nil); err != nil {
		return err
	}
	c.log.Debug("user created", zap.String("email", utils.HashEmail(req.Email)))
	return nil
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Op: op, Kind: KindUnexpected, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Op: op, Kind: KindUnexpected, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("api call",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Op:      op,
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Body),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Kind: KindUnexpected, Status: resp.StatusCode, Err: err}
	}
	return nil
}

func errorMessage(r io.Reader) string {
	var body models.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}
