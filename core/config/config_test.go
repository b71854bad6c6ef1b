package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edgekit/core/config"
)

// Each test uses its own config type: loaded values are cached per type
// for the process lifetime, so types cannot be shared between tests.

func TestLoadDefaults(t *testing.T) {
	type testDefaultsConfig struct {
		Locales string `env:"TEST_CFG_LOCALES" envDefault:"es,en"`
		MaxAge  int    `env:"TEST_CFG_MAX_AGE" envDefault:"3600"`
	}

	var cfg testDefaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "es,en", cfg.Locales)
	assert.Equal(t, 3600, cfg.MaxAge)
}

func TestLoadFromEnvironment(t *testing.T) {
	type testEnvConfig struct {
		Default string `env:"TEST_CFG_DEFAULT_LOCALE" envDefault:"es"`
	}

	t.Setenv("TEST_CFG_DEFAULT_LOCALE", "en")

	var cfg testEnvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Default)
}

func TestLoadCachesPerType(t *testing.T) {
	type testCachedConfig struct {
		Value string `env:"TEST_CFG_CACHED" envDefault:"first"`
	}

	var first testCachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Later environment changes do not affect an already loaded type
	t.Setenv("TEST_CFG_CACHED", "second")

	var second testCachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadRequired(t *testing.T) {
	type testRequiredConfig struct {
		ConnURL string `env:"TEST_CFG_CONN_URL,required"`
	}

	var cfg testRequiredConfig
	require.Error(t, config.Load(&cfg))
}

func TestLoadNilTarget(t *testing.T) {
	require.Error(t, config.Load[struct{}](nil))
}

func TestMustLoadPanics(t *testing.T) {
	type testMustConfig struct {
		Token string `env:"TEST_CFG_TOKEN,required"`
	}

	require.Panics(t, func() {
		var cfg testMustConfig
		config.MustLoad(&cfg)
	})
}
