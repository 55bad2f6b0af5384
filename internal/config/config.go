package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a jyotish session.
// Values are populated from .jyotish.yaml, JYOTISH_* env vars, and CLI flags.
type Config struct {
	// Latitude and Longitude are the default birth place used when the
	// CLI flags are omitted. Degrees, east and north positive.
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`

	// Timezone is the default IANA zone name for parsing birth times.
	Timezone string `mapstructure:"timezone"`

	// ElementsFile optionally points at a TOML catalog of osculating
	// orbital elements that overrides the built-in mean elements.
	ElementsFile string `mapstructure:"elements_file"`

	// TracePath enables JSONL telemetry when non-empty.
	TracePath string `mapstructure:"trace_path"`

	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("latitude", 0.0)
	viper.SetDefault("longitude", 0.0)
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("elements_file", "")
	viper.SetDefault("trace_path", "")
	viper.SetDefault("json", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
