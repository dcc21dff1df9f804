package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs with cross-field rules that
// struct tags cannot express.
type Validator interface {
	Validate() error
}

// Option adjusts a single Load call.
type Option func(*options)

type options struct {
	envFiles    []string
	prefix      string
	environment map[string]string
}

// WithEnvFiles loads the given dotenv files before parsing. Missing files are
// skipped and variables already set in the process environment win.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// WithPrefix prepends prefix to every variable name, e.g. "TASKAPI_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvironment parses from env instead of the process environment.
// Tests use it to stay independent of the host.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) { o.environment = env }
}

// Load parses environment variables into v according to its `env` and
// `envDefault` tags (github.com/caarlos0/env) and then runs v.Validate when
// the type implements Validator.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//		DSN  string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environment == nil {
		for _, file := range o.envFiles {
			// A missing .env file is normal outside local development.
			_ = godotenv.Load(file)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
