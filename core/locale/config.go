package locale

import "strings"

// Config provides environment-based configuration for the locale set.
type Config struct {
	Supported    string `env:"LOCALES" envDefault:"es,en"`
	Default      string `env:"DEFAULT_LOCALE" envDefault:"es"`
	CookieName   string `env:"LOCALE_COOKIE_NAME" envDefault:"locale"`
	CookieMaxAge int    `env:"LOCALE_COOKIE_MAX_AGE" envDefault:"31536000"` // 1 year
}

// NewFromConfig creates a Locales instance from configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Locales, error) {
	supported := make([]string, 0, 4)
	for _, code := range strings.Split(cfg.Supported, ",") {
		if code = strings.TrimSpace(code); code != "" {
			supported = append(supported, code)
		}
	}

	configOpts := make([]Option, 0, 2+len(opts))
	if cfg.CookieName != "" {
		configOpts = append(configOpts, WithCookieName(cfg.CookieName))
	}
	if cfg.CookieMaxAge > 0 {
		configOpts = append(configOpts, WithCookieMaxAge(cfg.CookieMaxAge))
	}
	configOpts = append(configOpts, opts...)

	return New(supported, cfg.Default, configOpts...)
}
