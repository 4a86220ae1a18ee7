package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken   string        `env:"BOT_TOKEN,required,notEmpty" validate:"required"`
	GroupID    int64         `env:"GROUP_ID,required" validate:"ne=0"`
	ChannelID  int64         `env:"CHANNEL_ID,required" validate:"ne=0"`
	SuperAdmin int64         `env:"SUPER_ADMIN,required" validate:"gt=0"`
	InviteTTL  time.Duration `env:"INVITE_TTL" envDefault:"30m" validate:"gt=0"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// HTTPAddr enables the health listener; Render and similar hosts pass PORT instead
	HTTPAddr string `env:"HTTP_ADDR"`
	Port     string `env:"PORT"`

	Database  DatabaseConfig
	Broadcast BroadcastConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" envDefault:"sqlite" validate:"oneof=sqlite postgres"`
	Path     string `env:"DB_PATH" envDefault:"bot.db" validate:"required_if=Driver sqlite"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"invitegate"`
	User     string `env:"DB_USER" envDefault:"invitegate"`
	Password string `env:"DB_PASSWORD" validate:"required_if=Driver postgres"`
}

// BroadcastConfig controls fan-out of admin broadcasts
type BroadcastConfig struct {
	Workers   int     `env:"BROADCAST_WORKERS" envDefault:"4" validate:"gt=0,lte=32"`
	PerSecond float64 `env:"BROADCAST_RATE" envDefault:"25" validate:"gt=0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// HTTPAddress returns the address for the health listener, empty when disabled
func (c *Config) HTTPAddress() string {
	if c.HTTPAddr != "" {
		return c.HTTPAddr
	}
	if c.Port != "" {
		return ":" + c.Port
	}
	return ""
}

// DSN returns the connection string for the configured driver
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Name,
		)
	}
	return d.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
}

func validateStruct(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s %s", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
