package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/util"
)

type epicycleRow struct {
	Frequency int     `json:"frequency" yaml:"frequency"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Phase     float64 `json:"phase" yaml:"phase"`
}

type sampleRow struct {
	Time          float64 `json:"time" yaml:"time"`
	Approximation float64 `json:"approximation" yaml:"approximation"`
	True          float64 `json:"true" yaml:"true"`
	Error         float64 `json:"error" yaml:"error"`
}

type sampleReport struct {
	Family    string        `json:"family" yaml:"family"`
	Terms     int           `json:"terms" yaml:"terms"`
	MeanError float64       `json:"mean_error" yaml:"mean_error"`
	Epicycles []epicycleRow `json:"epicycles" yaml:"epicycles"`
	Samples   []sampleRow   `json:"samples" yaml:"samples"`
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the partial sum against the ideal waveform over one period",
		Long: `Evaluate the series at evenly spaced times across one period and print
the approximation, the ground truth and the squared error at each time.

Examples:
  # 16 samples of a 5-term square wave
  epicycles sample

  # sawtooth with 20 terms as yaml
  epicycles sample --family sawtooth --terms 20 -o yaml`,
		Args: cobra.NoArgs,
		RunE: runSample,
	}
	f := cmd.Flags()
	f.IntP("terms", "n", 0, "number of terms")
	f.StringP("family", "f", "", "waveform (rectangular, sawtooth)")
	f.Int("steps", 16, "number of samples over the period")
	f.StringP("output", "o", "table", "output format (table, yaml, json)")
	return cmd
}

func runSample(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	steps, _ := cmd.Flags().GetInt("steps")
	format, _ := cmd.Flags().GetString("output")

	report, err := buildReport(cfg.Family(), cfg.Fourier.DefaultTerms, steps)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, format)
}

func buildReport(family fourier.Family, terms, steps int) (sampleReport, error) {
	if steps < 1 {
		return sampleReport{}, fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	chain, err := fourier.NewChain(family, terms)
	if err != nil {
		return sampleReport{}, err
	}

	report := sampleReport{Family: family.String(), Terms: chain.Terms()}
	for _, e := range chain.Epicycles() {
		report.Epicycles = append(report.Epicycles, epicycleRow{
			Frequency: e.Frequency,
			Amplitude: e.Amplitude,
			Phase:     e.Phase,
		})
	}
	var total float64
	for i := range steps {
		t := float64(i) * fourier.Period / float64(steps)
		chain.Advance(t)
		row := sampleRow{
			Time:          t,
			Approximation: chain.Approximation(),
			True:          chain.TrueValue(),
			Error:         chain.Error(),
		}
		total += row.Error
		report.Samples = append(report.Samples, row)
	}
	report.MeanError = total / float64(steps)
	return report, nil
}

func writeReport(w io.Writer, report sampleReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		fmt.Fprintf(w, "%s, %d terms, mean squared error %.6f\n\n", familyTitle(report.Family), report.Terms, report.MeanError)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tAPPROX\tTRUE\tERROR")
		for _, s := range report.Samples {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.6f\n",
				util.FormatTime(s.Time),
				util.FormatSigned(s.Approximation, 4),
				util.FormatSigned(s.True, 4),
				s.Error,
			)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q (supported: table, yaml, json)", format)
}

func familyTitle(name string) string {
	f, err := fourier.ParseFamily(name)
	if err != nil {
		return name
	}
	return f.Title()
}
