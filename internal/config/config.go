package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"devhub"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"devhub_dev_password"`
	DBName     string `env:"DB_NAME" envDefault:"devhub"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"10h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN builds the postgres connection string used by both the pool and the
// migration runner.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
