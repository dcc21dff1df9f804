package tasks

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/taskapi/handler"
	"github.com/dmitrymomot/taskapi/pkg/binder"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// Handler serves the /tasks routes. Every route requires an authenticated owner.
type Handler struct {
	tasks        TaskRepository
	tags         TagRepository
	projects     ProjectRepository
	errorHandler handler.ErrorHandler[handler.Context]
	now          func() time.Time
	logger       *slog.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithClock overrides time.Now, used for timestamps and due date checks.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates the tasks handler.
func NewHandler(
	tasks TaskRepository,
	tags TagRepository,
	projects ProjectRepository,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...Option,
) *Handler {
	h := &Handler{
		tasks:        tasks,
		tags:         tags,
		projects:     projects,
		errorHandler: errorHandler,
		now:          time.Now,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes mounts the task endpoints behind authenticate.
func (h *Handler) Routes(authenticate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(authenticate)
	r.Post("/", h.wrap(h.create))
	r.Get("/", h.wrap(h.list))
	r.Get("/{id}", h.wrap(h.get))
	r.Patch("/{id}", h.wrap(h.update))
	return r
}

func (h *Handler) wrap(fn handler.HandlerFunc[handler.Context]) http.HandlerFunc {
	return handler.Wrap(fn, handler.WithErrorHandler(h.errorHandler))
}

func (h *Handler) create(ctx handler.Context) handler.Response {
	ownerID, ok := jwt.UserID(ctx)
	if !ok {
		return handler.Error(ErrNoOwner)
	}

	in, err := binder.JSONFields(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	rules := h.rulesFor(ownerID)
	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("title", in.Get("title"), titleRule).Required(),
		sanitizer.Body("description", in.Get("description"), descriptionRule),
		sanitizer.Body("priority", in.Get("priority"), priorityRule),
		sanitizer.Body("due_at", in.Get("due_at"), rules.dueAt),
		sanitizer.Body("url", in.Get("url"), validator.URL),
		sanitizer.Body("tag_ids", in.Get("tag_ids"), rules.tags).As("tags"),
		sanitizer.Body("project_id", in.Get("project_id"), rules.project),
	)
	if err != nil {
		return handler.Error(err)
	}

	now := h.now().UTC()
	task := Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       sanitizer.Get[string](c, "title"),
		Description: sanitizer.GetOr(c, "description", ""),
		Priority:    sanitizer.GetOr(c, "priority", PriorityMedium),
		URL:         sanitizer.GetOr(c, "url", ""),
		TagIDs:      tagIDs(sanitizer.GetOr(c, "tags", []Tag{})),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	sanitizer.IfPresent(c.Value("due_at"), func(t time.Time) { task.DueAt = &t })
	sanitizer.IfPresent(c.Value("project_id"), func(id uuid.UUID) { task.ProjectID = &id })

	if err := h.tasks.Save(ctx, task); err != nil {
		return handler.Error(err)
	}

	h.logger.InfoContext(ctx, "task created",
		logger.Component("tasks"),
		logger.UserID(ownerID),
		slog.String("task_id", task.ID.String()),
	)
	return handler.Created(newTaskView(task, ctx.Location()))
}

func (h *Handler) update(ctx handler.Context) handler.Response {
	ownerID, ok := jwt.UserID(ctx)
	if !ok {
		return handler.Error(ErrNoOwner)
	}

	id, err := h.pathID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	in, err := binder.JSONFields(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	rules := h.rulesFor(ownerID)
	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("title", in.Get("title"), titleRule),
		sanitizer.Body("description", in.Get("description"), descriptionRule),
		sanitizer.Body("priority", in.Get("priority"), priorityRule),
		sanitizer.Body("due_at", in.Get("due_at"), rules.dueAt),
		sanitizer.Body("url", in.Get("url"), validator.URL),
		sanitizer.Body("tag_ids", in.Get("tag_ids"), rules.tags).As("tags"),
		sanitizer.Body("project_id", in.Get("project_id"), rules.project),
		sanitizer.Body("completed", in.Get("completed"), validator.Bool),
	)
	if err != nil {
		return handler.Error(err)
	}
	if !c.AnyFieldHasValue() {
		return handler.Empty()
	}

	task, err := h.tasks.FindByID(ctx, ownerID, id)
	if err != nil {
		return handler.Error(err)
	}

	sanitizer.IfPresent(c.Value("title"), func(v string) { task.Title = v })
	sanitizer.IfPresent(c.Value("description"), func(v string) { task.Description = v })
	sanitizer.IfPresent(c.Value("priority"), func(v Priority) { task.Priority = v })
	sanitizer.IfPresent(c.Value("due_at"), func(v time.Time) { task.DueAt = &v })
	sanitizer.IfPresent(c.Value("url"), func(v string) { task.URL = v })
	sanitizer.IfPresent(c.Value("tags"), func(v []Tag) { task.TagIDs = tagIDs(v) })
	sanitizer.IfPresent(c.Value("project_id"), func(v uuid.UUID) { task.ProjectID = &v })
	sanitizer.IfPresent(c.Value("completed"), func(v bool) { task.Completed = v })
	task.UpdatedAt = h.now().UTC()

	if err := h.tasks.Save(ctx, task); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(newTaskView(task, ctx.Location()))
}

func (h *Handler) get(ctx handler.Context) handler.Response {
	ownerID, ok := jwt.UserID(ctx)
	if !ok {
		return handler.Error(ErrNoOwner)
	}

	id, err := h.pathID(ctx)
	if err != nil {
		return handler.Error(err)
	}

	task, err := h.tasks.FindByID(ctx, ownerID, id)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(newTaskView(task, ctx.Location()))
}

func (h *Handler) list(ctx handler.Context) handler.Response {
	ownerID, ok := jwt.UserID(ctx)
	if !ok {
		return handler.Error(ErrNoOwner)
	}

	r := ctx.Request()
	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Query("completed", binder.Query(r, "completed"), validator.Bool),
		sanitizer.Query("priority", binder.Query(r, "priority"), priorityRule),
		sanitizer.Query("due_before", binder.Query(r, "due_before"), validator.DateTime),
		sanitizer.Query("limit", binder.Query(r, "limit"), limitRule),
	)
	if err != nil {
		return handler.Error(err)
	}

	filter := Filter{Limit: int(sanitizer.GetOr[int64](c, "limit", defaultListLimit))}
	sanitizer.IfPresent(c.Value("completed"), func(v bool) { filter.Completed = &v })
	sanitizer.IfPresent(c.Value("priority"), func(v Priority) { filter.Priority = &v })
	sanitizer.IfPresent(c.Value("due_before"), func(v time.Time) { filter.DueBefore = &v })

	tasks, err := h.tasks.List(ctx, ownerID, filter)
	if err != nil {
		return handler.Error(err)
	}

	views := make([]taskView, len(tasks))
	for i, t := range tasks {
		views[i] = newTaskView(t, ctx.Location())
	}
	return handler.JSON(views, handler.WithJSONMeta(map[string]any{
		"count": len(views),
		"limit": filter.Limit,
	}))
}

func (h *Handler) pathID(ctx handler.Context) (uuid.UUID, error) {
	return sanitizer.One(ctx,
		sanitizer.Path("id", binder.Path(ctx.Request(), chi.URLParam, "id"), idRule).Required(),
	)
}
