package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/movieflix/movieflix-go/internal/crypto"
	"github.com/movieflix/movieflix-go/internal/model"
	"github.com/movieflix/movieflix-go/internal/repository"
)

const testSecret = "test-secret"

func newTestAuthService() *AuthService {
	return NewAuthService(repository.NewMemoryUserStore(), testSecret, time.Hour)
}

func register(t *testing.T, svc *AuthService, email string) model.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    email,
		Password: "secret123",
		Username: "moviefan",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	return resp
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  model.CreateUserRequest
		want error
	}{
		{"empty email", model.CreateUserRequest{Password: "p", Username: "u"}, ErrEmailRequired},
		{"empty password", model.CreateUserRequest{Email: "a@b.c", Username: "u"}, ErrPasswordRequired},
		{"empty username", model.CreateUserRequest{Email: "a@b.c", Password: "p"}, ErrUsernameRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("Register() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc := newTestAuthService()
	resp := register(t, svc, "new@example.com")

	if resp.Token == "" {
		t.Fatal("Register() returned empty token")
	}
	claims, err := crypto.ValidateToken(resp.Token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token bound to %q, want %q", claims.UserID, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	register(t, svc, "taken@example.com")

	_, err := svc.Register(context.Background(), model.CreateUserRequest{
		Email:    "Taken@Example.COM",
		Password: "other",
		Username: "other",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService()
	reg := register(t, svc, "login@example.com")

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "login@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.User.ID != reg.User.ID {
		t.Errorf("Login() user ID = %q, want %q", resp.User.ID, reg.User.ID)
	}
	if _, err := crypto.ValidateToken(resp.Token, testSecret); err != nil {
		t.Errorf("Login() token does not validate: %v", err)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc := newTestAuthService()
	register(t, svc, "real@example.com")
	ctx := context.Background()

	_, wrongPassword := svc.Login(ctx, model.LoginRequest{Email: "real@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, model.LoginRequest{Email: "ghost@example.com", Password: "nope"})

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Error("wrong-password and unknown-email failures must not be distinguishable")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	svc := newTestAuthService()
	reg := register(t, svc, "profile@example.com")

	user, err := svc.Profile(context.Background(), reg.Token)
	if err != nil {
		t.Fatalf("Profile() unexpected error: %v", err)
	}
	if user.ID != reg.User.ID {
		t.Errorf("Profile() ID = %q, want %q", user.ID, reg.User.ID)
	}
	if user.Email != "profile@example.com" {
		t.Errorf("Profile() email = %q, want %q", user.Email, "profile@example.com")
	}
}

func TestProfileExpiredToken(t *testing.T) {
	store := repository.NewMemoryUserStore()
	svc := NewAuthService(store, testSecret, -time.Minute)
	reg := register(t, svc, "expired@example.com")

	_, err := svc.Profile(context.Background(), reg.Token)
	if !errors.Is(err, crypto.ErrTokenExpired) {
		t.Errorf("Profile() error = %v, want ErrTokenExpired", err)
	}
}

func TestProfileTamperedToken(t *testing.T) {
	svc := newTestAuthService()
	register(t, svc, "tamper@example.com")

	forged, err := crypto.GenerateToken(uuid.NewString(), "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = svc.Profile(context.Background(), forged)
	if !errors.Is(err, crypto.ErrTokenInvalid) {
		t.Errorf("Profile() error = %v, want ErrTokenInvalid", err)
	}
}

func TestProfileAccountGone(t *testing.T) {
	svc := newTestAuthService()

	// A sound token bound to an identifier the store never issued.
	token, err := crypto.GenerateToken(uuid.NewString(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = svc.Profile(context.Background(), token)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Profile() error = %v, want ErrAccountNotFound", err)
	}
}
