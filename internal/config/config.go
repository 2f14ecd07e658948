package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileName = "schedule_maker_config.yaml"

// Config represents the application configuration
type Config struct {
	// DataDir holds the three store documents
	DataDir string `yaml:"dataDir" validate:"required"`

	// SavesDir holds snapshot saves; defaults to <dataDir>/saves
	SavesDir string `yaml:"savesDir,omitempty"`

	// WindowDays is the size of a freshly initialized calendar window
	WindowDays int `yaml:"windowDays,omitempty" validate:"omitempty,min=1"`

	// WindowRRule optionally overrides the window expansion with a
	// recurrence rule (e.g. "FREQ=DAILY;COUNT=28")
	WindowRRule string `yaml:"windowRRule,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		DataDir:    "data",
		SavesDir:   filepath.Join("data", "saves"),
		WindowDays: 28,
	}
}

// Load loads and validates the configuration. It looks for the config
// file in the current directory first, then in the user's home
// directory; when neither exists the defaults apply.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.WindowRRule != "" {
		if _, err := rrule.StrToRRule(cfg.WindowRRule); err != nil {
			return fmt.Errorf("invalid windowRRule: %w", err)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.SavesDir == "" && cfg.DataDir != "" {
		cfg.SavesDir = filepath.Join(cfg.DataDir, "saves")
	}
	if cfg.WindowDays == 0 {
		cfg.WindowDays = 28
	}
}

// findConfigFile searches for the config file in the current directory
// and the home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fs.ErrNotExist
}
