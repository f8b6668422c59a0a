// Package config loads cronexpand settings from a config file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		Environment string `mapstructure:"environment"`
	} `mapstructure:"app"`
	Output struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"output"`
}

// Load reads the configuration. With an empty cfgFile, ./cronexpand.toml (or
// .yaml, .json) is used when present; an explicit cfgFile must exist. Environment variables
// prefixed with CRONEXPAND_ override file values (CRONEXPAND_OUTPUT_FORMAT).
func Load(cfgFile string) (*Config, error) {
	v := viper.GetViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cronexpand")
	}

	v.SetEnvPrefix("CRONEXPAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("app.environment", "production")
	v.SetDefault("output.format", "table")
}

// BindFlags registers the persistent flags that override config values.
func BindFlags(cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.StringP("format", "f", "", "output format: table, json, yaml")

	if err := viper.BindPFlag("log.level", flags.Lookup("log-level")); err != nil {
		return err
	}
	return viper.BindPFlag("output.format", flags.Lookup("format"))
}
