package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind separates access tokens from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the payload of every token issued by Service.
// Access tokens carry the user id as subject; refresh tokens carry none.
type Claims struct {
	Kind Kind `json:"knd"`
	gojwt.RegisteredClaims
}

// Pair is the response of a successful login, registration or refresh.
type Pair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for issuing and for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service issues and verifies HS256 tokens. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	key        []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time

	strict  *gojwt.Parser
	lenient *gojwt.Parser
}

// New creates a token service from cfg.
func New(cfg Config, opts ...Option) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSigningKey
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, ErrInvalidTTL
	}

	s := &Service{
		key:        []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	methods := gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()})
	s.strict = gojwt.NewParser(
		methods,
		gojwt.WithStrictDecoding(),
		gojwt.WithIssuer(s.issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	)
	// Signature only: the refresh flow has to read the subject of an expired access token.
	s.lenient = gojwt.NewParser(
		methods,
		gojwt.WithStrictDecoding(),
		gojwt.WithoutClaimsValidation(),
	)
	return s, nil
}

// IssueAccessToken signs an access token for userID, valid for the configured access TTL.
func (s *Service) IssueAccessToken(userID uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", ErrMissingSubject
	}
	token, _, err := s.issue(KindAccess, userID.String(), s.accessTTL)
	return token, err
}

// IssueRefreshToken signs a subject-less refresh token.
func (s *Service) IssueRefreshToken() (string, error) {
	token, _, err := s.issue(KindRefresh, "", s.refreshTTL)
	return token, err
}

// IssuePair issues an access and a refresh token at the same instant.
func (s *Service) IssuePair(userID uuid.UUID) (Pair, error) {
	if userID == uuid.Nil {
		return Pair{}, ErrMissingSubject
	}
	access, exp, err := s.issue(KindAccess, userID.String(), s.accessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, _, err := s.issue(KindRefresh, "", s.refreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

func (s *Service) issue(kind Kind, subject string, ttl time.Duration) (string, time.Time, error) {
	// Numeric dates carry whole seconds; expiry must be exactly iat + ttl.
	now := s.now().Truncate(gojwt.TimePrecision)
	exp := now.Add(ttl)

	claims := Claims{
		Kind: kind,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign %s token: %w", kind, err)
	}
	return signed, exp, nil
}

// Verify resolves an access token to its user id. It does not check that the
// user still exists.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	claims, err := s.parse(s.strict, token)
	if err != nil {
		return uuid.Nil, err
	}
	return subjectOf(claims)
}

// VerifyRefresh checks a refresh token: valid signature, issuer, not expired,
// refresh kind and no subject.
func (s *Service) VerifyRefresh(token string) error {
	claims, err := s.parse(s.strict, token)
	if err != nil {
		return err
	}
	if claims.Kind != KindRefresh || claims.Subject != "" {
		return ErrInvalidToken
	}
	return nil
}

// SubjectOf returns the user id of an access token whose signature and issuer
// are valid, ignoring expiry.
func (s *Service) SubjectOf(token string) (uuid.UUID, error) {
	claims, err := s.parse(s.lenient, token)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.Issuer != s.issuer {
		return uuid.Nil, ErrTamperedToken
	}
	return subjectOf(claims)
}

func (s *Service) parse(p *gojwt.Parser, token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := p.ParseWithClaims(token, claims, func(*gojwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, classify(parsed, err)
	}
	return claims, nil
}

// classify maps library errors onto the package's failure kinds.
func classify(token *gojwt.Token, err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid),
		errors.Is(err, gojwt.ErrTokenInvalidIssuer):
		return errors.Join(ErrTamperedToken, err)
	case errors.Is(err, gojwt.ErrTokenMalformed) && token != nil && token.Method != nil:
		// header and claims decoded, so the signature segment itself is corrupt
		return errors.Join(ErrTamperedToken, err)
	case errors.Is(err, gojwt.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}

func subjectOf(claims *Claims) (uuid.UUID, error) {
	if claims.Kind != KindAccess || strings.TrimSpace(claims.Subject) == "" {
		return uuid.Nil, ErrMissingSubject
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrMissingSubject
	}
	return id, nil
}
