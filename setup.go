package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/olivier-w/epicycles/internal/config"
)

// flagKeys maps command-line flags to configuration keys. Only flags a
// command actually defines are bound.
var flagKeys = map[string]string{
	"log-file":     "log.file",
	"log-level":    "log.level",
	"terms":        "fourier.default_terms",
	"family":       "fourier.default_family",
	"speed":        "speed.default",
	"trace-length": "visualization.trace_length",
	"wrap":         "visualization.wrap_mode",
	"audio":        "audio.enabled",
	"grid":         "visualization.grid_enabled",
	"wave":         "visualization.show_wave",
	"freq":         "audio.base_frequency",
}

// loadConfig reads the config file, environment and the flags the user
// changed, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	v := config.New(file)

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		k, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return
		}
		if err := v.BindPFlag(k, f); err != nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("binding flags: %w", bindErr)
	}

	if err := config.Read(v, file != ""); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return config.Load(v)
}

// newLogger builds a file logger, or a no-op logger when no file is
// configured. The terminal belongs to the UI, so logs never go there.
func newLogger(cfg config.LogConfig) (*zap.Logger, func(), error) {
	if cfg.File == "" {
		return zap.NewNop(), func() {}, nil
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Encoding = "console"
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	logger, err := zc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
