// Package config provides a type-safe, cached loader for environment-based
// configuration.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (if present), environment
// variables are parsed into annotated structs, and each configuration type
// is parsed at most once and then served from an in-memory cache.
//
// Usage:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"5000"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config
