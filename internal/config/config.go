// Package config loads server configuration from the environment. A .env
// file in the working directory is honored for local development; real
// environment variables win over it.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start. Every field has a
// default, so a bare environment runs the demo storefront as-is: in-memory
// storage on port 8080.
type Config struct {
	Port int `env:"PORT,default=8080"`

	// StorageDriver selects the backend: "memory" or "sqlite".
	StorageDriver string `env:"STORAGE_DRIVER,default=memory"`

	// SQLitePath is the sqlite data source. The ":memory:" default keeps
	// state volatile; point it at a file to opt in to persistence.
	SQLitePath string `env:"SQLITE_PATH,default=:memory:"`

	// GenerateDelay simulates model inference latency on /api/generate-art.
	GenerateDelay time.Duration `env:"GENERATE_DELAY,default=2s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// Load reads an optional .env file, then decodes the environment.
func Load() (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}
	return cfg, nil
}
