// Package config loads readscore settings from defaults, the project config
// file and READSCORE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nvandessel/readscore/internal/models"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the data directory.
const FileName = "config.yaml"

var validate = validator.New()

// Config holds the user-tunable settings.
type Config struct {
	// Metric selection token: ARI, FK, SMOG, CL or all
	Metric string `yaml:"metric" env:"READSCORE_METRIC" validate:"required,oneof=ARI FK SMOG CL all"`

	// Output format
	Format string `yaml:"format" env:"READSCORE_FORMAT" validate:"required,oneof=text table json"`

	// What to do with scores below zero: clamp or fail
	NegativeAgePolicy string `yaml:"negative_age_policy" env:"READSCORE_NEGATIVE_AGE_POLICY" validate:"required,oneof=clamp fail"`

	// Save every report to the history database
	History bool `yaml:"history" env:"READSCORE_HISTORY"`

	// Detect the document language and warn on non-English text
	DetectLanguage bool `yaml:"detect_language" env:"READSCORE_DETECT_LANGUAGE"`

	// Colorize ages in text output
	Color bool `yaml:"color" env:"READSCORE_COLOR"`

	LogLevel string `yaml:"log_level" env:"READSCORE_LOG_LEVEL" validate:"required,oneof=DEBUG INFO WARN ERROR"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Metric:            "all",
		Format:            "text",
		NegativeAgePolicy: "clamp",
		History:           false,
		DetectLanguage:    true,
		Color:             false,
		LogLevel:          "WARN",
	}
}

// Load layers the config file in dataDir and the environment over Default.
// A missing config file or .env is not an error.
func Load(dataDir string) (Config, error) {
	cfg := Default()

	if err := cfg.mergeFile(filepath.Join(dataDir, FileName)); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// normalize canonicalizes the case of enumerated values so "smog" or "Json"
// validate like "SMOG" and "json".
func (c *Config) normalize() {
	c.Metric = strings.TrimSpace(c.Metric)
	if strings.EqualFold(c.Metric, "all") {
		c.Metric = "all"
	}
	for _, m := range models.AllMetrics {
		if strings.EqualFold(c.Metric, string(m)) {
			c.Metric = string(m)
		}
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.NegativeAgePolicy = strings.ToLower(strings.TrimSpace(c.NegativeAgePolicy))
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Template is the commented config file written by "readscore init".
const Template = `# readscore configuration
# Environment variables (READSCORE_METRIC, READSCORE_FORMAT, ...) override these values.

# Which score to show: ARI, FK, SMOG, CL or all
metric: all

# Output format: text, table or json
format: text

# Scores below zero have no age bucket. clamp maps them to age 0, fail reports an error.
negative_age_policy: clamp

# Save every analysis to history.db
history: false

# Warn when the text does not look like English
detect_language: true

color: false
log_level: WARN
`

// WriteTemplate writes Template to dataDir unless a config file already exists.
func WriteTemplate(dataDir string) (bool, error) {
	path := filepath.Join(dataDir, FileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(Template), 0644); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", FileName, err)
	}
	return true, nil
}
