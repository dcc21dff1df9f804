package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in with email and password.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// UserRepository persists users. FindByID and FindByEmail return
// ErrUserNotFound for unknown users; Create returns ErrEmailTaken when the
// email is already registered.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, user User) error
}
