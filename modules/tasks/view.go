package tasks

import (
	"time"

	"github.com/google/uuid"
)

// taskView is the JSON form of a Task. Timestamps are rendered in the
// request's offset.
type taskView struct {
	ID          uuid.UUID   `json:"id"`
	ProjectID   *uuid.UUID  `json:"project_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    Priority    `json:"priority"`
	DueAt       *string     `json:"due_at"`
	URL         string      `json:"url,omitempty"`
	Completed   bool        `json:"completed"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

func newTaskView(t Task, loc *time.Location) taskView {
	v := taskView{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		URL:         t.URL,
		Completed:   t.Completed,
		TagIDs:      t.TagIDs,
		CreatedAt:   t.CreatedAt.In(loc).Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.In(loc).Format(time.RFC3339),
	}
	if v.TagIDs == nil {
		v.TagIDs = []uuid.UUID{}
	}
	if t.DueAt != nil {
		due := t.DueAt.In(loc).Format(time.RFC3339)
		v.DueAt = &due
	}
	return v
}
