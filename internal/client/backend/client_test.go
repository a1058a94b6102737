package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/movieflix/movieflix-go/internal/model"
)

func authServerStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req model.CreateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email == "taken@example.com" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(model.Envelope{Success: false, Message: "email already taken"})
			return
		}
		json.NewEncoder(w).Encode(model.Envelope{Success: true, Data: model.AuthResponse{
			Token: "issued-token",
			User:  model.UserResponse{ID: "id-1", Email: req.Email, Username: req.Username},
		}})
	})

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(model.Envelope{Success: false, Message: "invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(model.Envelope{Success: true, Data: model.AuthResponse{
			Token: "issued-token",
			User:  model.UserResponse{ID: "id-1", Email: req.Email, Username: "moviefan"},
		}})
	})

	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer issued-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(model.Envelope{Success: false, Message: "invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(model.Envelope{Success: true, Data: model.UserResponse{
			ID: "id-1", Email: "user@example.com", Username: "moviefan",
		}})
	})

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.Envelope{Success: true, Message: "Server is healthy"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRegister(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	resp, err := c.Register(context.Background(), "new@example.com", "secret123", "moviefan")
	require.NoError(t, err)
	require.Equal(t, "issued-token", resp.Token)
	require.Equal(t, "new@example.com", resp.User.Email)
}

func TestClientRegisterConflict(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	_, err := c.Register(context.Background(), "taken@example.com", "secret123", "moviefan")
	require.ErrorIs(t, err, ErrConflict)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "email already taken", apiErr.Message)
	require.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestClientLogin(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	resp, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "issued-token", resp.Token)
}

func TestClientLoginUnauthorized(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	_, err := c.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientProfile(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	user, err := c.Profile(context.Background(), "issued-token")
	require.NoError(t, err)
	require.Equal(t, "id-1", user.ID)
}

func TestClientProfileRejected(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	_, err := c.Profile(context.Background(), "stale-token")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientHealth(t *testing.T) {
	srv := authServerStub(t)
	c := NewClient(srv.URL, nil)

	require.NoError(t, c.Health(context.Background()))
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, &http.Client{Timeout: 20 * time.Millisecond})
	_, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.ErrorIs(t, err, ErrTimeout)
}

func TestClientUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, nil)
	_, err := c.Login(context.Background(), "user@example.com", "secret123")
	require.ErrorIs(t, err, ErrUnavailable)
}
