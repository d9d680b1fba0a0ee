package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	prefix      string
	files       []string
	optional    bool
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "APP_".
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvFiles loads the given dotenv files before parsing. Variables already
// present in the process environment win. Missing files are an error.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
		l.optional = false
	}
}

// WithOptionalEnvFiles is like WithEnvFiles but ignores files that do not exist.
func WithOptionalEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
		l.optional = true
	}
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) { l.environment = vars }
}

// Load parses environment variables into v using `env` struct tags.
//
//	type Config struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("APP_"), config.WithOptionalEnvFiles(".env"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	for _, file := range l.files {
		if err := godotenv.Load(file); err != nil {
			if l.optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
	}

	// a nil Environment makes env read os.Environ
	envOpts := env.Options{Prefix: l.prefix, Environment: l.environment}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
