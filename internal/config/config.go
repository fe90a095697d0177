// Package config loads the generator settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "datamodel-generator.yaml"

// EnvPrefix prefixes environment overrides, e.g. DATAMODEL_GEN_OUTPUT_DIR.
const EnvPrefix = "DATAMODEL_GEN"

// ErrConfigNotFound is returned when an explicitly named file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config is the generator configuration.
type Config struct {
	Output      OutputConfig  `mapstructure:"output"`
	DateFormat  string        `mapstructure:"date_format"`
	Parallelism int           `mapstructure:"parallelism"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

// OutputConfig controls where scripts are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Output:      OutputConfig{Dir: "."},
		DateFormat:  "ms",
		Parallelism: 4,
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads configFile, or FileName in the working directory when configFile
// is empty. A missing default file yields the defaults.
func Load(configFile string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("output.dir", config.Output.Dir)
	v.SetDefault("date_format", config.DateFormat)
	v.SetDefault("parallelism", config.Parallelism)
	v.SetDefault("logging.level", config.Logging.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved := configFile
	if resolved == "" {
		resolved = FileName
	}

	_, statErr := os.Stat(resolved)

	switch {
	case statErr == nil:
		v.SetConfigFile(resolved)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file content: %w", err)
		}
	case os.IsNotExist(statErr) && configFile != "":
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configFile)
	case !os.IsNotExist(statErr):
		return nil, fmt.Errorf("failed to stat config file: %w", statErr)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}

	switch c.DateFormat {
	case "", "ms", "iso":
	default:
		return fmt.Errorf("unknown date format %q", c.DateFormat)
	}

	return nil
}
