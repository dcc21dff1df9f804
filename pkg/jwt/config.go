package jwt

import "time"

type Config struct {
	Secret     string        `env:"JWT_SECRET,required"`               // Secret is the HMAC signing key, at least 32 bytes in production.
	Issuer     string        `env:"JWT_ISSUER" envDefault:"taskapi"`   // Issuer is written to and required in the iss claim.
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`   // AccessTTL is the lifetime of access tokens.
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"720h"` // RefreshTTL is the lifetime of refresh tokens.
}
