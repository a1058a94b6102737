package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/movieflix/movieflix-go/internal/model"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	user := &model.User{Email: "User@Example.com", Username: "user", AuthHash: "hash"}
	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Create() did not assign an ID")
	}
	if user.Email != "user@example.com" {
		t.Errorf("Create() stored email %q, want lowercased", user.Email)
	}
	if user.CreatedAt.IsZero() {
		t.Error("Create() did not set CreatedAt")
	}

	got, err := store.GetByEmail(ctx, "USER@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("GetByEmail() unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("GetByEmail() ID = %q, want %q", got.ID, user.ID)
	}

	byID, err := store.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if byID.Email != user.Email {
		t.Errorf("GetByID() email = %q, want %q", byID.Email, user.Email)
	}
}

func TestMemoryStoreDuplicateEmailCaseInsensitive(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	if err := store.Create(ctx, &model.User{Email: "dup@example.com", Username: "a", AuthHash: "h"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	err := store.Create(ctx, &model.User{Email: "DUP@example.com", Username: "b", AuthHash: "h"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetByID(ctx, "missing-id"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestMemoryStoreConcurrentCreateSameEmail(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	const racers = 50

	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := &model.User{Email: "race@example.com", Username: "racer", AuthHash: "h"}
			results <- store.Create(ctx, user)
		}()
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDuplicateEmail):
			duplicates++
		default:
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("concurrent Create(): %d successes, want exactly 1", successes)
	}
	if duplicates != racers-1 {
		t.Errorf("concurrent Create(): %d duplicates, want %d", duplicates, racers-1)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	user := &model.User{Email: "copy@example.com", Username: "orig", AuthHash: "h"}
	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	got, err := store.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	got.Username = "mutated"

	again, err := store.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if again.Username != "orig" {
		t.Error("GetByID() returned a shared reference, want a copy")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Errorf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Errorf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a duplicate entry error")
	}
	if !isDuplicateEntryError(errors.New("Error 1062 (23000): Duplicate entry 'a@b.c' for key 'users.email'")) {
		t.Error("MySQL 1062 error should be a duplicate entry error")
	}
}
