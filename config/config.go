// Package config reads runtime settings from TAGLESS_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/on-the-ground/tagless_go/effects"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogBufferSize    int    `env:"LOG_BUFFER_SIZE" envDefault:"64"`
	TaskBufferSize   int    `env:"TASK_BUFFER_SIZE" envDefault:"16"`
	TaskWorkers      int    `env:"TASK_WORKERS" envDefault:"4"`
	ProfileCacheSize int    `env:"PROFILE_CACHE_SIZE" envDefault:"1024"`
}

const prefix = "TAGLESS_"

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{Prefix: prefix})
}

// LoadFrom parses vars instead of the process environment. Keys carry the TAGLESS_ prefix.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// TaskScope sizes the task handler.
func (c Config) TaskScope() effects.EffectScopeConfig {
	return effects.NewEffectScopeConfig(c.TaskBufferSize, c.TaskWorkers)
}

// NewLogger builds a production zap logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}
