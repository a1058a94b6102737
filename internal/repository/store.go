package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/movieflix/movieflix-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserStore is the credential store: durable persistence of accounts and
// enforcement of case-insensitive email uniqueness. The store is
// append-only; no update or delete operations exist.
//
// Create must be safe under concurrent invocation: two racing Create calls
// with the same email yield exactly one success and one ErrDuplicateEmail.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// normalizeEmail folds an email to its canonical lowercase form. All store
// implementations compare the folded form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
