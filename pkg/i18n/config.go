package i18n

// Config is loaded from the environment with pkg/config.
type Config struct {
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	LogMissing      bool   `env:"I18N_LOG_MISSING" envDefault:"false"`
}

// Options converts cfg into translator options.
func (cfg Config) Options() []Option {
	return []Option{
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithMissingTranslationsLogging(cfg.LogMissing),
	}
}
