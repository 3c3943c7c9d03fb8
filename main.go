package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/tone"
	"github.com/olivier-w/epicycles/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "epicycles",
		Short: "Watch a truncated Fourier series draw a waveform",
		Long: `Animate the epicycles of a truncated Fourier series and compare the
partial sum against the ideal rectangular or sawtooth wave.

Keys:
  space  pause/play       r      reset
  ←/→    fewer/more terms ↑/↓    speed
  f      next waveform    1/2    rectangular/sawtooth
  g      grid             w      waveform strip
  q      quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is ./epicycles.yaml or $HOME/.config/epicycles/epicycles.yaml)")
	pf.String("log-file", "", "write logs to this file (logging is off otherwise)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	f := root.Flags()
	f.IntP("terms", "n", 0, "initial number of terms")
	f.StringP("family", "f", "", "initial waveform (rectangular, sawtooth)")
	f.Int("speed", 0, "initial speed")
	f.Int("trace-length", 0, "number of traced points kept")
	f.String("wrap", "", "period wrap mode (carry, zero)")
	f.Bool("audio", false, "play the partial sum as a tone")
	f.Bool("grid", true, "draw the grid")
	f.Bool("wave", true, "draw the waveform strip")

	root.AddCommand(newSampleCmd(), newExportCmd())
	return root
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, sync, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer sync()

	opts, err := cfg.AnimationOptions(logger)
	if err != nil {
		return err
	}
	anim, err := animation.New(opts)
	if err != nil {
		return fmt.Errorf("starting animation: %w", err)
	}

	var player *tone.Player
	if cfg.Audio.Enabled {
		p, err := tone.NewPlayer(tone.NewSynth(cfg.Audio.BaseFrequency), cfg.Audio.Volume)
		if err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			player = p
			defer func() {
				if err := player.Close(); err != nil {
					logger.Warn("closing audio", zap.Error(err))
				}
			}()
		}
	}

	model := ui.New(anim, ui.Settings{
		FPS:           cfg.Visualization.FPS,
		Grid:          cfg.Visualization.GridEnabled,
		ShowWave:      cfg.Visualization.ShowWave,
		EpicycleScale: cfg.Visualization.EpicycleScale,
	}, player, logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
