package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/movieflix/movieflix-go/internal/model"
)

// MemoryUserStore is an in-memory UserStore used in tests and as the
// fallback when no database DSN is configured. The uniqueness check and the
// insert happen under one lock, so concurrent registrations with the same
// email resolve to exactly one success.
type MemoryUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

var _ UserStore = (*MemoryUserStore)(nil)

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
	}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	email := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return ErrDuplicateEmail
	}

	user.ID = uuid.NewString()
	user.Email = email
	user.CreatedAt = time.Now().UTC()

	stored := *user
	s.byEmail[email] = &stored
	s.byID[user.ID] = &stored

	return nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}
