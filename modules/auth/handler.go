package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/taskapi/handler"
	"github.com/dmitrymomot/taskapi/pkg/binder"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/sanitizer"
	"github.com/dmitrymomot/taskapi/pkg/validator"
)

// RefreshTokenHeader carries the refresh token on POST /auth/refresh.
const RefreshTokenHeader = "X-Refresh-Token"

const (
	minPasswordLength = 8
	maxPasswordBytes  = 72 // bcrypt rejects longer input
	maxNameLength     = 100
)

var (
	nameRule     = validator.Chain(validator.Pre(validator.NotEmpty, sanitizer.SingleLine), validator.MaxLength(maxNameLength))
	emailRule    = validator.Pre(validator.Email, sanitizer.TrimToLower)
	passwordRule = validator.Chain(validator.String, validator.MinLength(minPasswordLength), validator.MaxBytes(maxPasswordBytes))
)

// Handler serves the /auth routes.
type Handler struct {
	svc          *Service
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHandler creates the HTTP handler.
func NewHandler(svc *Service, errorHandler handler.ErrorHandler[handler.Context]) *Handler {
	return &Handler{svc: svc, errorHandler: errorHandler}
}

// Routes mounts the auth endpoints. authenticate protects GET /me.
func (h *Handler) Routes(authenticate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/register", h.wrap(h.register))
	r.Post("/login", h.wrap(h.login))
	r.Post("/refresh", h.wrap(h.refresh))
	r.With(authenticate).Get("/me", h.wrap(h.me))
	return r
}

func (h *Handler) wrap(fn handler.HandlerFunc[handler.Context]) http.HandlerFunc {
	return handler.Wrap(fn, handler.WithErrorHandler(h.errorHandler))
}

func (h *Handler) register(ctx handler.Context) handler.Response {
	in, err := binder.JSONFields(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("name", in.Get("name"), nameRule).Required(),
		sanitizer.Body("email", in.Get("email"), emailRule).Required(),
		sanitizer.Body("password", in.Get("password"), passwordRule).Required(),
	)
	if err != nil {
		return handler.Error(err)
	}

	user, pair, err := h.svc.Register(ctx, Registration{
		Name:     sanitizer.Get[string](c, "name"),
		Email:    sanitizer.Get[string](c, "email"),
		Password: sanitizer.Get[string](c, "password"),
	})
	if err != nil {
		return handler.Error(err)
	}

	return handler.Created(sessionResponse{
		User:   newUserResponse(user, ctx.Location()),
		Tokens: newTokenResponse(pair, ctx.Location()),
	})
}

func (h *Handler) login(ctx handler.Context) handler.Response {
	in, err := binder.JSONFields(ctx.Request())
	if err != nil {
		return handler.Error(err)
	}

	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Body("email", in.Get("email"), emailRule).Required(),
		sanitizer.Body("password", in.Get("password"), validator.NotEmpty).Required(),
	)
	if err != nil {
		return handler.Error(err)
	}

	user, pair, err := h.svc.Authenticate(ctx, sanitizer.Get[string](c, "email"), sanitizer.Get[string](c, "password"))
	if err != nil {
		return handler.Error(err)
	}

	return handler.JSON(sessionResponse{
		User:   newUserResponse(user, ctx.Location()),
		Tokens: newTokenResponse(pair, ctx.Location()),
	})
}

func (h *Handler) refresh(ctx handler.Context) handler.Response {
	r := ctx.Request()
	in, err := binder.JSONFields(r)
	if err != nil {
		return handler.Error(err)
	}

	c, err := sanitizer.Sanitize(ctx,
		sanitizer.Header(RefreshTokenHeader, binder.Header(r, RefreshTokenHeader), validator.NotEmpty).
			Required().
			As("refresh_token"),
		sanitizer.Body("access_token", in.Get("access_token"), validator.NotEmpty).Required(),
	)
	if err != nil {
		return handler.Error(err)
	}

	pair, err := h.svc.Refresh(ctx, sanitizer.Get[string](c, "refresh_token"), sanitizer.Get[string](c, "access_token"))
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(newTokenResponse(pair, ctx.Location()))
}

func (h *Handler) me(ctx handler.Context) handler.Response {
	id, ok := jwt.UserID(ctx)
	if !ok {
		return handler.Error(jwt.ErrMissingToken)
	}
	user, err := h.svc.Me(ctx, id)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(newUserResponse(user, ctx.Location()))
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

type sessionResponse struct {
	User   userResponse  `json:"user"`
	Tokens tokenResponse `json:"tokens"`
}

func newUserResponse(u User, loc *time.Location) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

func newTokenResponse(p jwt.Pair, loc *time.Location) tokenResponse {
	return tokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresAt:    p.ExpiresAt.In(loc).Format(time.RFC3339),
	}
}
