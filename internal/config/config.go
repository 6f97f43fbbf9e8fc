package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInput    = "congress_orig.txt"
	DefaultOutput   = "congress.txt"
	DefaultLogLevel = "info"
)

type Config struct {
	Paths struct {
		Input  string `yaml:"input" validate:"required"`
		Output string `yaml:"output" validate:"required"`
	} `yaml:"paths"`
	Strict bool `yaml:"strict"` // reject malformed edge lines instead of skipping them
	Log    struct {
		Level string `yaml:"level" validate:"oneof=debug info warn error"`
	} `yaml:"log"`
}

var validate = validator.New()

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	var cfg Config
	cfg.Paths.Input = DefaultInput
	cfg.Paths.Output = DefaultOutput
	cfg.Log.Level = DefaultLogLevel
	return &cfg
}

// LoadConfig layers defaults, the YAML file at path (optional) and
// GRAPHWEIGHT_* environment variables, then validates the result.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if v := os.Getenv("GRAPHWEIGHT_INPUT"); v != "" {
		cfg.Paths.Input = v
	}
	if v := os.Getenv("GRAPHWEIGHT_OUTPUT"); v != "" {
		cfg.Paths.Output = v
	}
	if v := os.Getenv("GRAPHWEIGHT_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("GRAPHWEIGHT_STRICT: %w", err)
		}
		cfg.Strict = strict
	}
	if v := os.Getenv("GRAPHWEIGHT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required paths and the log level.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
