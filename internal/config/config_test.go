package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/fourier"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg, err := Load(New(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fourier.DefaultTerms != 5 || cfg.Speed.Scale != DefaultSpeedScale {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Family() != fourier.Rectangular {
		t.Fatalf("expected rectangular default, got %s", cfg.Family())
	}
}

func TestReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epicycles.yaml")
	data := `fourier:
  max_terms: 12
  default_terms: 7
  default_family: sawtooth
visualization:
  trace_length: 80
  wrap_mode: zero
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	v := New(path)
	if err := Read(v, true); err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fourier.MaxTerms != 12 || cfg.Fourier.DefaultTerms != 7 || cfg.Family() != fourier.Sawtooth {
		t.Fatalf("file values not applied: %+v", cfg.Fourier)
	}
	if cfg.Fourier.MinTerms != 1 {
		t.Fatalf("expected default min_terms to survive, got %d", cfg.Fourier.MinTerms)
	}

	opts, err := cfg.AnimationOptions(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.WrapMode != animation.WrapZero || opts.TraceCapacity != 80 || opts.Logger == nil {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestMissingExplicitFileFails(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "nope.yaml"))
	if err := Read(v, true); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestMissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if err := Read(New(""), false); err != nil {
		t.Fatalf("expected no error without a config file, got %v", err)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("EPICYCLES_FOURIER_DEFAULT_TERMS", "9")
	cfg, err := Load(New(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Fourier.DefaultTerms != 9 {
		t.Fatalf("expected env override 9, got %d", cfg.Fourier.DefaultTerms)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	v := New("")
	v.Set("fourier.min_terms", 10)
	v.Set("fourier.max_terms", 2)
	v.Set("visualization.trace_length", 0)
	v.Set("fourier.default_family", "triangle")

	_, err := Load(v)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"max_terms 2 is below min_terms 10", "trace_length", "default_family"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in error, got:\n%s", want, msg)
		}
	}
}

func TestRejectsUnusableSpeedScale(t *testing.T) {
	cases := map[string]float64{
		"infinite":  math.Inf(1),
		"nan":       math.NaN(),
		"zero":      0,
		"too large": 2e18,
	}
	for name, scale := range cases {
		t.Run(name, func(t *testing.T) {
			v := New("")
			v.Set("speed.scale", scale)
			_, err := Load(v)
			if err == nil || !strings.Contains(err.Error(), "speed.scale") {
				t.Fatalf("expected speed.scale error, got %v", err)
			}
		})
	}
}

func TestRejectsFullPeriodStep(t *testing.T) {
	v := New("")
	v.Set("speed.max", 100)
	v.Set("speed.scale", 0.1)
	_, err := Load(v)
	if err == nil || !strings.Contains(err.Error(), "full period") {
		t.Fatalf("expected full period error, got %v", err)
	}
}

func TestRejectsUnboundedEpicycleScale(t *testing.T) {
	for _, scale := range []float64{-1, 1e9, math.Inf(1), math.NaN()} {
		v := New("")
		v.Set("visualization.epicycle_scale", scale)
		if _, err := Load(v); err == nil {
			t.Fatalf("expected error for epicycle_scale %v", scale)
		}
	}
}
