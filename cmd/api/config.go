package main

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/taskapi/pkg/httpserver"
	"github.com/dmitrymomot/taskapi/pkg/i18n"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
	"github.com/dmitrymomot/taskapi/pkg/pg"
)

// Config is the whole process configuration.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"taskapi"`
	LogLevel string `env:"LOG_LEVEL"`

	HTTP httpserver.Config
	DB   pg.Config
	JWT  jwt.Config
	I18n i18n.Config
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	switch c.Env {
	case logger.EnvDevelopment, logger.EnvStaging, logger.EnvProduction:
	default:
		return fmt.Errorf("APP_ENV must be one of %s, %s, %s; got %q",
			logger.EnvDevelopment, logger.EnvStaging, logger.EnvProduction, c.Env)
	}
	if c.Env == logger.EnvProduction && len(c.JWT.Secret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 bytes in production")
	}
	return nil
}
