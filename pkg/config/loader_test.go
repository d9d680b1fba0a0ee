package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqguard/pkg/config"
)

type serverConfig struct {
	Addr     string   `env:"ADDR" envDefault:":8080"`
	Status   int      `env:"STATUS" envDefault:"400"`
	Debug    bool     `env:"DEBUG"`
	Langs    []string `env:"LANGS" envSeparator:","`
	Required string   `env:"REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and prefix", func(t *testing.T) {
		var cfg serverConfig
		err := config.Load(&cfg,
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{
				"APP_REQUIRED": "yes",
				"APP_LANGS":    "en,it",
				"REQUIRED":     "ignored",
			}),
		)

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 400, cfg.Status)
		assert.Equal(t, "yes", cfg.Required)
		assert.Equal(t, []string{"en", "it"}, cfg.Langs)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("CFGTEST_REQUIRED", "from-env")
		t.Setenv("CFGTEST_STATUS", "422")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_")))
		assert.Equal(t, "from-env", cfg.Required)
		assert.Equal(t, 422, cfg.Status)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg serverConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg serverConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"REQUIRED": "x", "STATUS": "abc"}))
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
	})

	t.Run("env file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(file, []byte("DOTENV_CFG_REQUIRED=from-file\nDOTENV_CFG_ADDR=:9090\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv("DOTENV_CFG_REQUIRED")
			_ = os.Unsetenv("DOTENV_CFG_ADDR")
		})

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("DOTENV_CFG_"), config.WithEnvFiles(file)))
		assert.Equal(t, "from-file", cfg.Required)
		assert.Equal(t, ":9090", cfg.Addr)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg serverConfig
		missing := filepath.Join(t.TempDir(), "missing.env")

		err := config.Load(&cfg, config.WithEnvFiles(missing))
		assert.True(t, errors.Is(err, config.ErrLoadingEnvFile))

		err = config.Load(&cfg,
			config.WithOptionalEnvFiles(missing),
			config.WithEnvironment(map[string]string{"REQUIRED": "x"}),
		)
		assert.NoError(t, err)
	})

	t.Run("must load panics", func(t *testing.T) {
		var cfg serverConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
		})
	})
}
