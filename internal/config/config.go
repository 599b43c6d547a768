package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const envPrefix = "CAFE"

type Config struct {
	ServiceName string `mapstructure:"service_name"`
	Env         string `mapstructure:"env"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	MetricsDump bool   `mapstructure:"metrics_dump"`
	Tracing     bool   `mapstructure:"tracing"`
}

// Load reads configuration from CAFE_* environment variables and, when
// configDir is set, from a "cafe" config file (json, yaml or toml) in it.
// A missing file is not an error; defaults cover every key.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if configDir != "" {
		v.SetConfigName("cafe")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "cafe-patterns")
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_dump", false)
	v.SetDefault("tracing", false)
}
