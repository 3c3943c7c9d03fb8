package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/fourier"
)

// Config represents the application configuration
type Config struct {
	Fourier       FourierConfig       `mapstructure:"fourier"`
	Speed         SpeedConfig         `mapstructure:"speed"`
	Visualization VisualizationConfig `mapstructure:"visualization"`
	Audio         AudioConfig         `mapstructure:"audio"`
	Log           LogConfig           `mapstructure:"log"`
}

// FourierConfig bounds the series.
type FourierConfig struct {
	MinTerms      int    `mapstructure:"min_terms"`
	MaxTerms      int    `mapstructure:"max_terms"`
	DefaultTerms  int    `mapstructure:"default_terms"`
	DefaultFamily string `mapstructure:"default_family"`
}

// SpeedConfig maps the speed control to a per-tick time step.
type SpeedConfig struct {
	Min     int     `mapstructure:"min"`
	Max     int     `mapstructure:"max"`
	Default int     `mapstructure:"default"`
	Scale   float64 `mapstructure:"scale"`
}

// VisualizationConfig contains rendering settings
type VisualizationConfig struct {
	FPS           int     `mapstructure:"fps"`
	TraceLength   int     `mapstructure:"trace_length"`
	EpicycleScale float64 `mapstructure:"epicycle_scale"`
	GridEnabled   bool    `mapstructure:"grid_enabled"`
	ShowWave      bool    `mapstructure:"show_wave"`
	WrapMode      string  `mapstructure:"wrap_mode"`
}

// AudioConfig controls the audible preview.
type AudioConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	BaseFrequency float64 `mapstructure:"base_frequency"`
	Volume        float64 `mapstructure:"volume"`
}

// LogConfig selects where logs go. An empty file disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every inconsistency at once.
func (c *Config) Validate() error {
	var errs []error
	f := c.Fourier
	if f.MinTerms < 1 {
		errs = append(errs, fmt.Errorf("fourier.min_terms must be at least 1, got %d", f.MinTerms))
	}
	if f.MaxTerms < f.MinTerms {
		errs = append(errs, fmt.Errorf("fourier.max_terms %d is below min_terms %d", f.MaxTerms, f.MinTerms))
	}
	if f.DefaultTerms < f.MinTerms || f.DefaultTerms > f.MaxTerms {
		errs = append(errs, fmt.Errorf("fourier.default_terms %d outside [%d, %d]", f.DefaultTerms, f.MinTerms, f.MaxTerms))
	}
	if _, err := fourier.ParseFamily(f.DefaultFamily); err != nil {
		errs = append(errs, fmt.Errorf("fourier.default_family: %w", err))
	}

	s := c.Speed
	if s.Min < 1 {
		errs = append(errs, fmt.Errorf("speed.min must be at least 1, got %d", s.Min))
	}
	if s.Max < s.Min {
		errs = append(errs, fmt.Errorf("speed.max %d is below min %d", s.Max, s.Min))
	}
	if s.Default < s.Min || s.Default > s.Max {
		errs = append(errs, fmt.Errorf("speed.default %d outside [%d, %d]", s.Default, s.Min, s.Max))
	}
	switch {
	case !(s.Scale > 0) || math.IsInf(s.Scale, 0):
		errs = append(errs, fmt.Errorf("speed.scale must be positive and finite, got %v", s.Scale))
	case float64(s.Max)*s.Scale >= fourier.Period:
		errs = append(errs, fmt.Errorf("speed.scale %v makes speed.max %d step a full period or more per tick", s.Scale, s.Max))
	}

	vis := c.Visualization
	if vis.FPS <= 0 {
		errs = append(errs, fmt.Errorf("visualization.fps must be positive, got %d", vis.FPS))
	}
	if vis.TraceLength <= 0 {
		errs = append(errs, fmt.Errorf("visualization.trace_length must be positive, got %d", vis.TraceLength))
	}
	if !(vis.EpicycleScale >= 0) || vis.EpicycleScale > MaxEpicycleScale {
		errs = append(errs, fmt.Errorf("visualization.epicycle_scale must be in [0, %v], got %v", float64(MaxEpicycleScale), vis.EpicycleScale))
	}
	if _, err := animation.ParseWrapMode(vis.WrapMode); err != nil {
		errs = append(errs, fmt.Errorf("visualization.wrap_mode: %w", err))
	}

	a := c.Audio
	if a.BaseFrequency <= 0 || a.BaseFrequency > 4000 {
		errs = append(errs, fmt.Errorf("audio.base_frequency must be in (0, 4000], got %v", a.BaseFrequency))
	}
	if a.Volume < 0 || a.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", a.Volume))
	}

	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(msgs, "\n  "))
}

// Family returns the parsed default family.
func (c *Config) Family() fourier.Family {
	f, _ := fourier.ParseFamily(c.Fourier.DefaultFamily)
	return f
}

// AnimationOptions converts a validated config into animator options.
func (c *Config) AnimationOptions(logger *zap.Logger) (animation.Options, error) {
	wrap, err := animation.ParseWrapMode(c.Visualization.WrapMode)
	if err != nil {
		return animation.Options{}, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return animation.Options{
		MinTerms:      c.Fourier.MinTerms,
		MaxTerms:      c.Fourier.MaxTerms,
		DefaultTerms:  c.Fourier.DefaultTerms,
		DefaultFamily: c.Family(),
		MinSpeed:      c.Speed.Min,
		MaxSpeed:      c.Speed.Max,
		DefaultSpeed:  c.Speed.Default,
		SpeedScale:    c.Speed.Scale,
		TraceCapacity: c.Visualization.TraceLength,
		WrapMode:      wrap,
		Logger:        logger,
	}, nil
}
