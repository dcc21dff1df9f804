package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists every priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Task is a unit of work owned by a single user.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	ProjectID   *uuid.UUID
	Title       string
	Description string
	Priority    Priority
	DueAt       *time.Time
	URL         string
	Completed   bool
	TagIDs      []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag labels tasks of one owner.
type Tag struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

// Filter narrows List. Nil fields do not filter.
type Filter struct {
	Completed *bool
	Priority  *Priority
	DueBefore *time.Time
	Limit     int
}

// TaskRepository persists tasks. FindByID returns ErrTaskNotFound for
// unknown ids and for tasks of another owner.
type TaskRepository interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	Save(ctx context.Context, task Task) error
	List(ctx context.Context, ownerID uuid.UUID, filter Filter) ([]Task, error)
}

// TagRepository is a read-only lookup over the tags of one owner.
// FindAllByID returns the tags that exist, in any order.
type TagRepository interface {
	FindAllByID(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]Tag, error)
}

// ProjectRepository is a read-only lookup over the projects of one owner.
type ProjectRepository interface {
	ExistsByID(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}
