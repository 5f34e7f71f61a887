// Package api is the REST client for the conference backend. It owns
// the transport concerns the coordinators must not see: bearer token
// attachment, request pacing, and classification of HTTP failures into
// sentinel errors and server-message-carrying APIErrors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Transport errors
var (
	// ErrNotFound maps 404 responses for plain CRUD lookups.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized maps 401 responses. The client also invokes its
	// logout callback before returning it, so a stale token forces a
	// sign-out exactly once at the transport boundary.
	ErrUnauthorized = errors.New("session is no longer valid")
)

// APIError carries a server-provided rejection message. Error() returns
// the message alone so coordinators can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Config holds client construction parameters.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond int
}

// Client talks to the conference backend.
//
// token is read per request so the client always sends the current
// session token. onUnauthorized is the injected logout trigger
// (replacing the original codebase's mutable global sign-out hook):
// main wires it to the session store at construction time.
type Client struct {
	baseURL        string
	http           *http.Client
	limiter        *rate.Limiter
	token          func() string
	onUnauthorized func()
}

// NewClient creates a Client.
// PRE: cfg.BaseURL is non-empty; token is non-nil; onUnauthorized may be nil
func NewClient(cfg Config, token func() string, onUnauthorized func()) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(rps), rps),
		token:          token,
		onUnauthorized: onUnauthorized,
	}
}

// do issues one request. body and out may be nil.
// POST: 2xx decodes into out; 401 triggers the logout callback and
// returns ErrUnauthorized; 404 returns ErrNotFound; any other non-2xx
// returns an *APIError carrying the server message when one is present
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// A 401 from the auth endpoints is a rejected credential, not an
		// invalidated session: surface the server's message and keep the
		// current session (if any) intact.
		if strings.HasPrefix(path, "/auth/") {
			return &APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
		}
		slog.Warn("api_event", "event", "unauthorized", "method", method, "path", path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return &APIError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body.
// The backend uses either {"message": ...} or {"error": ...}.
func serverMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
