// Package config provides configuration loading and validation for the
// sigstat CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sigstat-io/sigstat/pkg/stats"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidPrecision = errors.New("invalid output precision")
)

// Output format names.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// Default configuration values.
const (
	defaultFormat    = FormatTable
	defaultPrecision = 4

	// maxPrecision is the largest digit count that adds information for a
	// float64.
	maxPrecision = 17
)

// Config holds all configuration for the sigstat CLI.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Stats  StatsConfig  `mapstructure:"stats"`
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
	NoColor   bool   `mapstructure:"no_color"`
}

// StatsConfig holds statistic defaults.
type StatsConfig struct {
	Weighting string `mapstructure:"weighting"`
}

// Weighting returns the configured default weighting.
func (c *Config) Weighting() (stats.Weighting, error) {
	w, err := stats.ParseWeighting(c.Stats.Weighting)
	if err != nil {
		return stats.Sample, fmt.Errorf("%w: %q", err, c.Stats.Weighting)
	}

	return w, nil
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("sigstat")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/sigstat")
	}

	viperCfg.SetEnvPrefix("SIGSTAT")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.precision", defaultPrecision)
	viperCfg.SetDefault("output.no_color", false)

	viperCfg.SetDefault("stats.weighting", stats.Sample.String())
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	switch config.Output.Format {
	case FormatTable, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if config.Output.Precision < 0 || config.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, config.Output.Precision)
	}

	_, err := config.Weighting()

	return err
}
