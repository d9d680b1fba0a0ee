package main

import "github.com/dmitrymomot/reqguard/pkg/httpserver"

// Config is read from APP_* environment variables and an optional .env file.
type Config struct {
	Env              string `env:"ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"reqguard"`
	LogLevel         string `env:"LOG_LEVEL"`
	DefaultLang      string `env:"DEFAULT_LANG" envDefault:"en"`
	ValidationStatus int    `env:"VALIDATION_STATUS" envDefault:"400"`
	MaxBodySize      int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`

	HTTP httpserver.Config
}
