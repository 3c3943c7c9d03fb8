package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// EPICYCLES_FOURIER_MAX_TERMS.
const EnvPrefix = "EPICYCLES"

// DefaultSpeedScale maps speed 1..100 to 0.0004..0.04 radians per tick.
const DefaultSpeedScale = 1.0 / 2500

// MaxEpicycleScale caps visualization.epicycle_scale in dots per unit amplitude.
const MaxEpicycleScale = 1000

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fourier.min_terms", 1)
	v.SetDefault("fourier.max_terms", 50)
	v.SetDefault("fourier.default_terms", 5)
	v.SetDefault("fourier.default_family", "rectangular")

	v.SetDefault("speed.min", 1)
	v.SetDefault("speed.max", 100)
	v.SetDefault("speed.default", 50)
	v.SetDefault("speed.scale", DefaultSpeedScale)

	v.SetDefault("visualization.fps", 30)
	v.SetDefault("visualization.trace_length", 500)
	v.SetDefault("visualization.epicycle_scale", 0)
	v.SetDefault("visualization.grid_enabled", true)
	v.SetDefault("visualization.show_wave", true)
	v.SetDefault("visualization.wrap_mode", "carry")

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.base_frequency", 220.0)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults, env overrides and the
// config file search path set up. file may be empty.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	v.SetConfigName("epicycles")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/epicycles")
	v.AddConfigPath("/etc/epicycles")
	return v
}

// Read loads the config file if one is present. A missing file is not
// an error unless it was named explicitly.
func Read(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && !explicit {
		return nil
	}
	return err
}
