package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/taskapi/handler"
	"github.com/dmitrymomot/taskapi/modules/auth"
	"github.com/dmitrymomot/taskapi/modules/tasks"
	"github.com/dmitrymomot/taskapi/pkg/httpserver"
	"github.com/dmitrymomot/taskapi/pkg/i18n"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
)

// deps are the collaborators the router is built from.
type deps struct {
	log        *slog.Logger
	translator *i18n.Translator
	tokens     *jwt.Service
	users      auth.UserRepository
	tasks      tasks.TaskRepository
	tags       tasks.TagRepository
	projects   tasks.ProjectRepository
	ready      []httpserver.Check
	now        func() time.Time
}

func newRouter(d deps) http.Handler {
	if d.now == nil {
		d.now = time.Now
	}

	onError := handler.NewHTTPErrorHandler(d.log, d.translator)
	errorHandler := handler.NewErrorHandler(d.log, d.translator)

	authService := auth.NewService(d.users, d.tokens, auth.WithLogger(d.log), auth.WithClock(d.now))
	authenticate := jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
		Service:      d.tokens,
		UserExists:   authService.UserExists,
		ErrorHandler: onError,
	})

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logRequests(d.log),
		middleware.Recoverer,
		i18n.Middleware(d.translator.Locale),
		handler.TimezoneMiddleware(onError),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { onError(w, r, handler.ErrNotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { onError(w, r, handler.ErrMethodNotAllowed) })

	r.Get("/health/live", httpserver.HealthHandler(d.log))
	r.Get("/health/ready", httpserver.HealthHandler(d.log, d.ready...))

	r.Mount("/auth", auth.NewHandler(authService, errorHandler).Routes(authenticate))
	r.Mount("/tasks", tasks.NewHandler(d.tasks, d.tags, d.projects, errorHandler,
		tasks.WithClock(d.now),
		tasks.WithLogger(d.log),
	).Routes(authenticate))

	return r
}

// logRequests writes one record per request once the response is sent.
func logRequests(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.LogAttrs(r.Context(), slog.LevelInfo, "request",
				logger.Component("http"),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Status(ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
