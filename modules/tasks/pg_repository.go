package tasks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/taskapi/pkg/pg"
)

const taskColumns = `id, owner_id, project_id, title, description, priority, due_at, url, completed, tag_ids, created_at, updated_at`

// PGTaskRepository stores tasks in the "tasks" table.
type PGTaskRepository struct {
	db pg.Querier
}

// NewPGTaskRepository returns a TaskRepository backed by db.
func NewPGTaskRepository(db pg.Querier) *PGTaskRepository {
	return &PGTaskRepository{db: db}
}

func (r *PGTaskRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return Task{}, fmt.Errorf("tasks: find task: %w", err)
	}
	task, err := pgx.CollectExactlyOneRow(rows, scanTask)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("tasks: find task: %w", err)
	}
	return task, nil
}

func (r *PGTaskRepository) Save(ctx context.Context, t Task) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			project_id = EXCLUDED.project_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			priority = EXCLUDED.priority,
			due_at = EXCLUDED.due_at,
			url = EXCLUDED.url,
			completed = EXCLUDED.completed,
			tag_ids = EXCLUDED.tag_ids,
			updated_at = EXCLUDED.updated_at
		WHERE tasks.owner_id = EXCLUDED.owner_id`,
		t.ID, t.OwnerID, t.ProjectID, t.Title, t.Description, string(t.Priority),
		t.DueAt, t.URL, t.Completed, t.TagIDs, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("tasks: save task: %w", err)
	}
	return nil
}

func (r *PGTaskRepository) List(ctx context.Context, ownerID uuid.UUID, f Filter) ([]Task, error) {
	where := []string{"owner_id = $1"}
	args := []any{ownerID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if f.Completed != nil {
		add("completed = ?", *f.Completed)
	}
	if f.Priority != nil {
		add("priority = ?", string(*f.Priority))
	}
	if f.DueBefore != nil {
		add("due_at < ?", *f.DueBefore)
	}
	args = append(args, f.Limit)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY due_at ASC NULLS LAST, created_at ASC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("tasks: list tasks: %w", err)
	}
	tasks, err := pgx.CollectRows(rows, scanTask)
	if err != nil {
		return nil, fmt.Errorf("tasks: list tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row pgx.CollectableRow) (Task, error) {
	var (
		t        Task
		priority string
	)
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.ProjectID, &t.Title, &t.Description, &priority,
		&t.DueAt, &t.URL, &t.Completed, &t.TagIDs, &t.CreatedAt, &t.UpdatedAt,
	)
	t.Priority = Priority(priority)
	return t, err
}

// PGTagRepository reads the "tags" table.
type PGTagRepository struct {
	db pg.Querier
}

// NewPGTagRepository returns a TagRepository backed by db.
func NewPGTagRepository(db pg.Querier) *PGTagRepository {
	return &PGTagRepository{db: db}
}

func (r *PGTagRepository) FindAllByID(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]Tag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, owner_id, name FROM tags WHERE owner_id = $1 AND id = ANY($2)`, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("tasks: find tags: %w", err)
	}
	tags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Tag, error) {
		var t Tag
		err := row.Scan(&t.ID, &t.OwnerID, &t.Name)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("tasks: find tags: %w", err)
	}
	return tags, nil
}

// PGProjectRepository reads the "projects" table.
type PGProjectRepository struct {
	db pg.Querier
}

// NewPGProjectRepository returns a ProjectRepository backed by db.
func NewPGProjectRepository(db pg.Querier) *PGProjectRepository {
	return &PGProjectRepository{db: db}
}

func (r *PGProjectRepository) ExistsByID(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2)`, id, ownerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("tasks: check project exists: %w", err)
	}
	return exists, nil
}
