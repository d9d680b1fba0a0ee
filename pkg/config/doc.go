// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags and may be preloaded from dotenv
// files via joho/godotenv:
//
//	type Config struct {
//		Addr     string `env:"ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("APP_"), config.WithOptionalEnvFiles(".env")); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
package config
