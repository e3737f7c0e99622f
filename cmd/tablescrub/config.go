package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the CLI settings resolved from defaults, an optional
// YAML file, environment variables (TABLESCRUB_*), and flags.
type Config struct {
	OutputDir   string   `mapstructure:"output_dir" validate:"required"`
	Format      string   `mapstructure:"format" validate:"oneof=csv tsv"`
	Compression string   `mapstructure:"compression" validate:"oneof=none gz xz zst"`
	SQLitePath  string   `mapstructure:"sqlite_path"`
	KeepColumns []string `mapstructure:"keep_columns"`
	Verbose     bool     `mapstructure:"verbose"`
}

// newViper builds the viper instance with defaults and sources wired.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("output_dir", "./output")
	v.SetDefault("format", "csv")
	v.SetDefault("compression", "none")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("keep_columns", []string{})
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("TABLESCRUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadConfig reads and validates the configuration.
func loadConfig(v *viper.Viper) (*Config, error) {
	configFile := os.Getenv("TABLESCRUB_CONFIG_PATH")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults, environment, and flags apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
