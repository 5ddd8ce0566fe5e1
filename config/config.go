// Package config loads campusroute settings from an optional YAML file, an
// optional .env file and CAMPUSROUTE_* environment variables, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. CAMPUSROUTE_DATA_FILE.
const EnvPrefix = "CAMPUSROUTE"

const (
	defaultDataFile     = "campus.dot"
	defaultNodeCapacity = 64
	defaultLogLevel     = "info"
	defaultLogEncoding  = "console"
)

// Validation errors.
var (
	ErrNoDataFile  = errors.New("config: data file is empty")
	ErrBadCapacity = errors.New("config: node capacity must be positive")
	ErrBadEncoding = errors.New("config: log encoding must be json or console")
)

// Config aggregates application settings.
type Config struct {
	// DataFile is the edge-list file loaded at start-up.
	DataFile string `yaml:"data_file" envconfig:"DATA_FILE"`

	// NodeCapacity is the initial bucket count of the graph's node index.
	NodeCapacity int `yaml:"node_capacity" envconfig:"NODE_CAPACITY"`

	// Log controls the zap logger.
	Log Logging `yaml:"log" envconfig:"LOG"`
}

// Logging controls structured logging settings.
type Logging struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Encoding string `yaml:"encoding" envconfig:"ENCODING"` // json|console
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile:     defaultDataFile,
		NodeCapacity: defaultNodeCapacity,
		Log: Logging{
			Level:    defaultLogLevel,
			Encoding: defaultLogEncoding,
		},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when
// empty), exports envFile into the process environment (skipped when empty;
// variables already set win), applies CAMPUSROUTE_* overrides and validates.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: env file %s: %w", envFile, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return ErrNoDataFile
	}
	if c.NodeCapacity <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, c.NodeCapacity)
	}
	switch strings.ToLower(c.Log.Encoding) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrBadEncoding, c.Log.Encoding)
	}

	return nil
}
