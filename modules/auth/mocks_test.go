package auth_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskapi/modules/auth"
)

type memoryUsers struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]auth.User
	lookups int
	failErr error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[uuid.UUID]auth.User)}
}

func (m *memoryUsers) FindByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return auth.User{}, m.failErr
	}
	u, ok := m.byID[id]
	if !ok {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return auth.User{}, m.failErr
	}
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

func (m *memoryUsers) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.failErr != nil {
		return false, m.failErr
	}
	_, ok := m.byID[id]
	return ok, nil
}

func (m *memoryUsers) Create(_ context.Context, user auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	for _, u := range m.byID {
		if u.Email == user.Email {
			return auth.ErrEmailTaken
		}
	}
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUsers) delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
}

func (m *memoryUsers) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

var errDatabaseDown = errors.New("database is down")
