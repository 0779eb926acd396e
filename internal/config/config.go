// Package config loads the settings of the drivererr command.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shiwano/drivererr"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. DRIVERERR_LOGGER_LEVEL.
	EnvPrefix = "DRIVERERR"
	// FileName is the config file looked up in the working directory.
	FileName = "drivererr"
)

type (
	// Config holds the settings of the drivererr command.
	Config struct {
		Logger LoggerConfig `mapstructure:"logger"`
		Host   HostConfig   `mapstructure:"host"`
	}

	// LoggerConfig configures the console logger and the optional rotating log file.
	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		ServiceName string `mapstructure:"service_name"`
		LogFile     string `mapstructure:"log_file"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxBackups  int    `mapstructure:"max_backups"`
		MaxAge      int    `mapstructure:"max_age"`
		Compress    bool   `mapstructure:"compress"`
	}

	// HostConfig configures how the local host is resolved for system information.
	HostConfig struct {
		// LookupTimeout bounds the local host name and address lookup.
		LookupTimeout time.Duration `mapstructure:"lookup_timeout"`
	}
)

// SetDefaults registers the default of every key so that environment
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "drivererr")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("host.lookup_timeout", drivererr.DefaultLookupTimeout)
}

// Load reads file, or drivererr.yaml from the working directory when file is
// empty, applies environment overrides and validates the result.
// A missing default config file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logger format %q: want console or json", c.Logger.Format)
	}
	if c.Host.LookupTimeout < 0 {
		return fmt.Errorf("invalid host lookup timeout %s", c.Host.LookupTimeout)
	}
	return nil
}
