package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Option presets a value; a matching environment variable still wins.
type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Server.WriteTimeout = timeout
	}
}

func WithEnv(env string) Option {
	return func(cfg *Config) {
		cfg.Env = env
	}
}
