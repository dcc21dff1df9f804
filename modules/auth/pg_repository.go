package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskapi/pkg/pg"
)

// PGUserRepository stores users in the "users" table.
type PGUserRepository struct {
	db pg.Querier
}

// NewPGUserRepository returns a UserRepository backed by db.
func NewPGUserRepository(db pg.Querier) *PGUserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, created_at`

func (r *PGUserRepository) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PGUserRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PGUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("auth: check user exists: %w", err)
	}
	return exists, nil
}

func (r *PGUserRepository) Create(ctx context.Context, u User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt,
	)
	switch {
	case pg.IsDuplicateKeyError(err):
		return ErrEmailTaken
	case err != nil:
		return fmt.Errorf("auth: create user: %w", err)
	}
	return nil
}

func (r *PGUserRepository) findOne(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("auth: find user: %w", err)
	}
	return u, nil
}
