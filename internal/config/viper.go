// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		QuoteAll  bool   `mapstructure:"quote_all" yaml:"quote_all"`
	} `mapstructure:"csv" yaml:"csv"`

	UI struct {
		Theme       string `mapstructure:"theme" yaml:"theme"`
		RowsPerPage int    `mapstructure:"rows_per_page" yaml:"rows_per_page"`
	} `mapstructure:"ui" yaml:"ui"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.app-penjualan")
	v.AddConfigPath(".app-penjualan")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PENJUALAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "")

	// The upstream export double-quotes every field, so quote_all stays on by
	// default for byte-compatible CSV output.
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.quote_all", true)

	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.rows_per_page", 10)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.UI.Theme != "dark" && config.UI.Theme != "light" {
		return fmt.Errorf("invalid theme: %s (must be 'dark' or 'light')", config.UI.Theme)
	}

	if config.UI.RowsPerPage < 1 {
		return fmt.Errorf("ui.rows_per_page must be at least 1, got: %d", config.UI.RowsPerPage)
	}

	return nil
}

// DataDirectory returns the configured data directory, falling back to
// ~/.app-penjualan/data when unset.
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".app-penjualan", "data")
	}
	return filepath.Join(homeDir, ".app-penjualan", "data")
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
