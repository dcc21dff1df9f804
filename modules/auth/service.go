package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
)

// Service registers and authenticates users and issues their token pairs.
type Service struct {
	users      UserRepository
	tokens     *jwt.Service
	bcryptCost int
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates the authentication service.
func NewService(users UserRepository, tokens *jwt.Service, opts ...Option) *Service {
	s := &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registration is the sanitized input of Register.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Register creates the user and signs them in.
func (s *Service) Register(ctx context.Context, in Registration) (User, jwt.Pair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return User{}, jwt.Pair{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return User{}, jwt.Pair{}, err
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return User{}, jwt.Pair{}, fmt.Errorf("auth: issue tokens: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.Component("auth"),
		logger.UserID(user.ID),
	)
	return user, pair, nil
}

// Authenticate checks the credentials and issues a new pair.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, jwt.Pair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, jwt.Pair{}, ErrInvalidCredentials
		}
		return User{}, jwt.Pair{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		s.logger.WarnContext(ctx, "password mismatch",
			logger.Component("auth"),
			logger.UserID(user.ID),
		)
		return User{}, jwt.Pair{}, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return User{}, jwt.Pair{}, fmt.Errorf("auth: issue tokens: %w", err)
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token and the last access token, which
// may have expired, for a new pair. The access token identifies the user, who
// must still exist.
func (s *Service) Refresh(ctx context.Context, refreshToken, accessToken string) (jwt.Pair, error) {
	if err := s.tokens.VerifyRefresh(refreshToken); err != nil {
		return jwt.Pair{}, err
	}

	userID, err := s.tokens.SubjectOf(accessToken)
	if err != nil {
		return jwt.Pair{}, err
	}

	if err := s.ensureExists(ctx, userID); err != nil {
		return jwt.Pair{}, err
	}

	pair, err := s.tokens.IssuePair(userID)
	if err != nil {
		return jwt.Pair{}, fmt.Errorf("auth: issue tokens: %w", err)
	}
	return pair, nil
}

// UserExists reports whether id still belongs to a user. It plugs into
// jwt.MiddlewareConfig.UserExists.
func (s *Service) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.users.ExistsByID(ctx, id)
}

// Me returns the user behind a verified access token.
func (s *Service) Me(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, jwt.ErrUnknownUser
	}
	return user, err
}

func (s *Service) ensureExists(ctx context.Context, id uuid.UUID) error {
	ok, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return jwt.ErrUnknownUser
	}
	return nil
}
