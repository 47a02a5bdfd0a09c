// Package config loads settings for the sketch CLI.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and SKETCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Config.Format.
const (
	FormatYAML = "yaml"
	FormatText = "text"
)

// Environment variable names.
const (
	EnvEnv       = "SKETCH_ENV"
	EnvLogPrefix = "SKETCH_LOG_PREFIX"
	EnvFormat    = "SKETCH_FORMAT"
	EnvQuiet     = "SKETCH_QUIET"
)

// ErrInvalidFormat is returned when Format is not one of the supported formats.
var ErrInvalidFormat = errors.New("config: format must be yaml or text")

// Config holds CLI settings. Env names the deployment environment and is
// reported in the CLI's log output.
type Config struct {
	Env       string `yaml:"env"`
	LogPrefix string `yaml:"logPrefix"`
	Format    string `yaml:"format"`
	Quiet     bool   `yaml:"quiet"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Env:       "local",
		LogPrefix: "sketch: ",
		Format:    FormatYAML,
	}
}

// LoadFromEnv applies environment overrides to Defaults.
func LoadFromEnv() (Config, error) {
	cfg := Defaults()
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the YAML file at path (if path is non-empty) over Defaults, then
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatYAML, FormatText:
		return nil
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidFormat, c.Format)
	}
}

func applyEnv(cfg *Config) {
	cfg.Env = getenv(EnvEnv, cfg.Env)
	cfg.LogPrefix = getenv(EnvLogPrefix, cfg.LogPrefix)
	cfg.Format = strings.ToLower(getenv(EnvFormat, cfg.Format))
	cfg.Quiet = getenvBool(EnvQuiet, cfg.Quiet)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
