package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const DefaultConfigPath = "./city-router.toml"

type Config struct {
	Data   DataConfig   `toml:"data"`
	Output OutputConfig `toml:"output"`
	Search SearchConfig `toml:"search"`
}

type DataConfig struct {
	Coordinates string `toml:"coordinates" validate:"required"`
	Adjacencies string `toml:"adjacencies" validate:"required"`
	Directed    bool   `toml:"directed"`
}

type OutputConfig struct {
	Separator string `toml:"separator" validate:"required"`
	Color     *bool  `toml:"color"`
	GeoJSON   string `toml:"geojson"`
}

type SearchConfig struct {
	// SnapRadius limits how far an "@x,y" entry may be from the location it
	// snaps to. Zero means no limit.
	SnapRadius float64 `toml:"snap_radius" validate:"gte=0"`
}

// ColorEnabled reports whether styled output was requested (default on)
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig decodes a TOML config file, fills defaults and validates it
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = CodeNotFound
		}
		return nil, WrapError(err, code, "failed to read config").WithContext(CtxPath, path)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, WrapError(err, CodeInvalidConfig, "failed to parse config").WithContext(CtxPath, path)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, AddContext(err, CtxPath, path)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Data.Coordinates) == "" {
		cfg.Data.Coordinates = "coordinates.txt"
	}
	if strings.TrimSpace(cfg.Data.Adjacencies) == "" {
		cfg.Data.Adjacencies = "Adjacencies.txt"
	}
	if cfg.Output.Separator == "" {
		cfg.Output.Separator = " -> "
	}
}

var validate = validator.New()

// Validate checks the config against its struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError turns validator output into one readable error
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return WrapError(err, CodeInvalidConfig, "invalid config")
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return NewError(CodeInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	field = strings.TrimPrefix(field, "config.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
