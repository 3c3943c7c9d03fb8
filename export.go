package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olivier-w/epicycles/internal/export"
	"github.com/olivier-w/epicycles/internal/fourier"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE.wav",
		Short: "Render the partial sum to a WAV file",
		Long: `Render the partial sum as a mono 16-bit tone so the effect of adding
terms can be heard.

Examples:
  # two seconds of a 5-term square wave at 220 Hz
  epicycles export square.wav

  # the ideal sawtooth for comparison
  epicycles export --family sawtooth --truth saw.wav`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
	defaults := export.DefaultOptions()
	f := cmd.Flags()
	f.IntP("terms", "n", 0, "number of terms")
	f.StringP("family", "f", "", "waveform (rectangular, sawtooth)")
	f.Float64("freq", defaults.Frequency, "tone frequency in Hz")
	f.Float64("seconds", defaults.Seconds, "duration in seconds")
	f.Int("rate", defaults.SampleRate, "sample rate in Hz")
	f.Bool("truth", false, "render the ideal waveform instead of the partial sum")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	opts := export.Options{Frequency: cfg.Audio.BaseFrequency}
	opts.Seconds, _ = flags.GetFloat64("seconds")
	opts.SampleRate, _ = flags.GetInt("rate")
	opts.Truth, _ = flags.GetBool("truth")

	chain, err := fourier.NewChain(cfg.Family(), cfg.Fourier.DefaultTerms)
	if err != nil {
		return err
	}

	out, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	n, err := export.WriteWAV(out, chain, opts)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(args[0])
		return fmt.Errorf("exporting %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d samples of a %d-term %s series to %s\n",
		n, chain.Terms(), chain.Family(), args[0])
	return nil
}
