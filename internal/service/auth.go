package service

import (
	"context"
	"errors"
	"time"

	"github.com/movieflix/movieflix-go/internal/crypto"
	"github.com/movieflix/movieflix-go/internal/model"
	"github.com/movieflix/movieflix-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrAccountNotFound    = errors.New("account not found")
)

// dummyHash is verified against on the unknown-email login path so that a
// lookup miss costs the same as a password mismatch. Any valid PHC string
// works; the candidate password never matches it.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// AuthService handles authentication business logic: registration, login
// and token-backed profile lookup over a UserStore.
type AuthService struct {
	store     repository.UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store repository.UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new account and returns it together with a fresh
// session token. The secret hash never appears in the response.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if req.Username == "" {
		return model.AuthResponse{}, ErrUsernameRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:    req.Email,
		Username: req.Username,
		AuthHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates an account and returns a fresh session token. An
// unknown email and a wrong password produce the same ErrInvalidCredentials:
// a dummy hash verification runs on the unknown-email path so the two are
// not distinguishable by timing either.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_, _ = crypto.VerifyPassword(req.Password, dummyHash)
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, User: user.Public()}, nil
}

// Profile validates a session token and returns the bound account.
// Propagates crypto.ErrTokenExpired and crypto.ErrTokenInvalid unchanged;
// returns ErrAccountNotFound if the token is sound but the account is gone.
func (s *AuthService) Profile(ctx context.Context, token string) (model.UserResponse, error) {
	claims, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.store.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrAccountNotFound
		}
		return model.UserResponse{}, err
	}

	return user.Public(), nil
}
