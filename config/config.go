// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/saqibullah/diabetes-predictor/logging"
)

type Config struct {
	Addr            string        `envconfig:"DIABETES_ADDR" default:":5000" validate:"required"`
	ReadTimeout     time.Duration `envconfig:"DIABETES_READ_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"DIABETES_WRITE_TIMEOUT" default:"10s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"DIABETES_SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
	MaxBodyBytes    int64         `envconfig:"DIABETES_MAX_BODY_BYTES" default:"1048576" validate:"gt=0"`
	AllowedOrigins  []string      `envconfig:"DIABETES_ALLOWED_ORIGINS" default:"*" validate:"min=1,dive,required"`
	HealthCheck     bool          `envconfig:"DIABETES_HEALTH_ENDPOINT" default:"false"`
	GinMode         string        `envconfig:"DIABETES_GIN_MODE" default:"release" validate:"oneof=debug release test"`
	Log             logging.Config
}

// Load reads the given .env files, then the process environment, and
// validates the result. Missing .env files are skipped; variables already set
// in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of any config value.
func Validate(cfg interface{}) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
