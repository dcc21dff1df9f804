// Package jwt issues and verifies the access and refresh tokens used for
// stateless authentication.
//
// Tokens are HS256-signed with github.com/golang-jwt/jwt/v5. Every token carries
// the issuer, an expiry, a unique id and a kind claim ("knd"). Access tokens
// carry the user id as subject; refresh tokens carry no subject at all.
//
// # Usage
//
//	svc, err := jwt.New(cfg, jwt.WithClock(time.Now))
//	pair, err := svc.IssuePair(userID)
//
//	id, err := svc.Verify(pair.AccessToken)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):   // now >= exp
//	case errors.Is(err, jwt.ErrTamperedToken):  // signature, algorithm or issuer mismatch
//	case errors.Is(err, jwt.ErrMissingSubject): // refresh token or unusable subject
//	case errors.Is(err, jwt.ErrInvalidToken):   // malformed
//	}
//
// Expiry is enforced by the signing library against the service clock, never
// re-derived by hand. Verify does not look the user up; the Middleware does
// that through the optional UserExists hook.
//
// # Refresh flow
//
// A client exchanges a refresh token together with its last access token:
// VerifyRefresh checks the refresh token and SubjectOf reads the user id of the
// access token with expiry ignored.
//
// # Error codes
//
// Code maps each failure to a stable client-facing code (token_expired,
// token_tampered, token_unknown_subject, invalid_token, token_missing,
// user_not_found) and HTTPStatus to its status: 403 for a missing token or
// unknown user, 400 otherwise.
package jwt
