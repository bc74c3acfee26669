package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Pause modes.
const (
	PauseAuto   = "auto"
	PauseAlways = "always"
	PauseNever  = "never"
)

// Config holds the sysindicator CLI configuration.
type Config struct {
	Format   string `mapstructure:"format"`
	Pause    string `mapstructure:"pause"`
	Color    bool   `mapstructure:"color"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from file and environment.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sysindicator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/sysindicator")
	}

	viper.SetDefault("format", "text")
	viper.SetDefault("pause", PauseAuto)
	viper.SetDefault("color", true)
	viper.SetDefault("log_level", "warn")

	viper.SetEnvPrefix("SYSINDICATOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Pause {
	case PauseAuto, PauseAlways, PauseNever:
	default:
		return fmt.Errorf("invalid pause mode %q (want %s, %s or %s)", c.Pause, PauseAuto, PauseAlways, PauseNever)
	}
	return nil
}
