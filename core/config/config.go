// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields:
//
//	type LocaleConfig struct {
//		Supported string `env:"LOCALES" envDefault:"es,en"`
//		Default   string `env:"DEFAULT_LOCALE" envDefault:"es"`
//	}
//
//	var cfg LocaleConfig
//	config.MustLoad(&cfg)
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache   sync.Map // reflect.Type -> parsed config value
	envOnce sync.Once
)

// Load parses environment variables into cfg.
// Each configuration type is loaded only once per application lifetime;
// subsequent calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	// Load .env once before the first parse; a missing file is not an error
	envOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad parses environment variables into cfg and panics on failure.
// Useful for application startup where a missing required variable is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
