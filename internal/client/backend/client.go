// Package backend is the client-side HTTP binding to the first-party auth
// API. Calls are single-shot: a timeout or failure is reported to the
// caller, never retried silently.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/movieflix/movieflix-go/internal/model"
)

const defaultTimeout = 15 * time.Second

// AuthAPI is the surface the session manager consumes. *Client implements
// it; tests substitute fakes.
type AuthAPI interface {
	Register(ctx context.Context, email, password, username string) (model.AuthResponse, error)
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
	Profile(ctx context.Context, token string) (model.UserResponse, error)
}

// Client talks to the auth API over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ AuthAPI = (*Client)(nil)

// NewClient creates a Client for the given base URL (e.g.
// "http://localhost:3000"). A nil httpClient gets a bounded default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// envelope mirrors the server's uniform response wrapper; Data stays raw
// until the per-call type is known.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Register creates an account and returns it with a fresh session token.
func (c *Client) Register(ctx context.Context, email, password, username string) (model.AuthResponse, error) {
	const op = "Register"
	body := model.CreateUserRequest{Email: email, Password: password, Username: username}

	var resp model.AuthResponse
	if err := c.postJSON(ctx, op, "/api/auth/register", body, &resp); err != nil {
		return model.AuthResponse{}, err
	}
	return resp, nil
}

// Login authenticates and returns the account with a fresh session token.
func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	const op = "Login"
	body := model.LoginRequest{Email: email, Password: password}

	var resp model.AuthResponse
	if err := c.postJSON(ctx, op, "/api/auth/login", body, &resp); err != nil {
		return model.AuthResponse{}, err
	}
	return resp, nil
}

// Profile replays the token to the server and returns the bound account.
func (c *Client) Profile(ctx context.Context, token string) (model.UserResponse, error) {
	const op = "Profile"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/profile", nil)
	if err != nil {
		return model.UserResponse{}, &APIError{Op: op, Kind: ErrInvalid, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	var resp model.UserResponse
	if err := c.do(op, req, &resp); err != nil {
		return model.UserResponse{}, err
	}
	return resp, nil
}

// Health checks server liveness via GET /api/health.
func (c *Client) Health(ctx context.Context) error {
	const op = "Health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return &APIError{Op: op, Kind: ErrInvalid, Message: err.Error()}
	}
	return c.do(op, req, nil)
}

func (c *Client) postJSON(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &APIError{Op: op, Kind: ErrInvalid, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &APIError{Op: op, Kind: ErrInvalid, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(op, req, out)
}

// do executes the request, decodes the envelope, and maps failures to
// typed error kinds.
func (c *Client) do(op string, req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(op, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Op: op, Kind: ErrServer, Status: resp.StatusCode, Message: fmt.Sprintf("decoding response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		return &APIError{Op: op, Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Op: op, Kind: ErrServer, Status: resp.StatusCode, Message: fmt.Sprintf("decoding payload: %v", err)}
		}
	}
	return nil
}
