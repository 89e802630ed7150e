package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP input collector.
type ServerConfig struct {
	Addr           string        `env:"SSCALC_ADDR"            envDefault:":8080"`
	AllowedOrigins []string      `env:"SSCALC_ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:8080" envSeparator:","`
	ReadTimeout    time.Duration `env:"SSCALC_READ_TIMEOUT"    envDefault:"15s"`
	WriteTimeout   time.Duration `env:"SSCALC_WRITE_TIMEOUT"   envDefault:"15s"`
	IdleTimeout    time.Duration `env:"SSCALC_IDLE_TIMEOUT"    envDefault:"60s"`
	ShutdownGrace  time.Duration `env:"SSCALC_SHUTDOWN_GRACE"  envDefault:"30s"`
}

// LoadServerConfig reads server settings from the process environment.
func LoadServerConfig() (ServerConfig, error) {
	return parseServerConfig(env.Options{})
}

func parseServerConfig(opts env.Options) (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
