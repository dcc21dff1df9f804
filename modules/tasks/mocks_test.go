package tasks_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/taskapi/modules/tasks"
)

var errLookupDown = errors.New("lookup backend unreachable")

type memoryTasks struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]tasks.Task
	calls int
	last  tasks.Filter
}

func newMemoryTasks() *memoryTasks {
	return &memoryTasks{byID: make(map[uuid.UUID]tasks.Task)}
}

func (m *memoryTasks) FindByID(_ context.Context, ownerID, id uuid.UUID) (tasks.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	t, ok := m.byID[id]
	if !ok || t.OwnerID != ownerID {
		return tasks.Task{}, tasks.ErrTaskNotFound
	}
	return t, nil
}

func (m *memoryTasks) Save(_ context.Context, t tasks.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.byID[t.ID] = t
	return nil
}

func (m *memoryTasks) List(_ context.Context, ownerID uuid.UUID, f tasks.Filter) ([]tasks.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.last = f

	var out []tasks.Task
	for _, t := range m.byID {
		if t.OwnerID != ownerID {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.DueBefore != nil && (t.DueAt == nil || !t.DueAt.Before(*f.DueBefore)) {
			continue
		}
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b tasks.Task) int { return a.CreatedAt.Compare(b.CreatedAt) })
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memoryTasks) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *memoryTasks) lastFilter() tasks.Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

type memoryTags struct {
	tags []tasks.Tag
	err  error
}

func (m *memoryTags) FindAllByID(_ context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]tasks.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []tasks.Tag
	for _, t := range m.tags {
		if t.OwnerID == ownerID && slices.Contains(ids, t.ID) {
			out = append(out, t)
		}
	}
	return out, nil
}

type memoryProjects struct {
	ids map[uuid.UUID]uuid.UUID // project id -> owner id
	err error
}

func (m *memoryProjects) ExistsByID(_ context.Context, ownerID, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	owner, ok := m.ids[id]
	return ok && owner == ownerID, nil
}
