package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"habituser"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"habitpassword"`
	DBName     string `env:"DB_NAME" envDefault:"habit_tracker"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"default-secret-key-change-me"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"habit-tracker-api"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

// Load populates a Config from environment variables. Defaults suit local
// development.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
