package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/epicycles/internal/config"
	"github.com/olivier-w/epicycles/internal/fourier"
)

// isolate keeps stray config files and env out of command tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildReportSamplesOnePeriod(t *testing.T) {
	report, err := buildReport(fourier.Sawtooth, 4, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Epicycles) != 4 || len(report.Samples) != 8 {
		t.Fatalf("unexpected sizes: %d epicycles, %d samples", len(report.Epicycles), len(report.Samples))
	}
	last := report.Samples[7].Time
	if last >= fourier.Period {
		t.Fatalf("expected samples inside one period, last at %v", last)
	}
	for _, s := range report.Samples {
		d := s.True - s.Approximation
		if s.Error != d*d {
			t.Fatalf("t=%v: expected error %v, got %v", s.Time, d*d, s.Error)
		}
	}
}

func TestBuildReportRejectsBadInput(t *testing.T) {
	if _, err := buildReport(fourier.Rectangular, 0, 8); err == nil {
		t.Fatal("expected error for zero terms")
	}
	if _, err := buildReport(fourier.Rectangular, 3, 0); err == nil {
		t.Fatal("expected error for zero steps")
	}
}

func TestWriteReportFormats(t *testing.T) {
	report, _ := buildReport(fourier.Rectangular, 2, 4)

	var js bytes.Buffer
	if err := writeReport(&js, report, "json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON sampleReport
	if err := json.Unmarshal(js.Bytes(), &fromJSON); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if fromJSON.Terms != 2 || fromJSON.Family != "rectangular" {
		t.Fatalf("unexpected json report %+v", fromJSON)
	}

	var ym bytes.Buffer
	if err := writeReport(&ym, report, "yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML sampleReport
	if err := yaml.Unmarshal(ym.Bytes(), &fromYAML); err != nil {
		t.Fatalf("yaml decode: %v", err)
	}
	if len(fromYAML.Samples) != 4 {
		t.Fatalf("expected 4 yaml samples, got %d", len(fromYAML.Samples))
	}

	var tbl bytes.Buffer
	if err := writeReport(&tbl, report, "table"); err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(tbl.String(), "Rectangular, 2 terms") || !strings.Contains(tbl.String(), "APPROX") {
		t.Fatalf("unexpected table:\n%s", tbl.String())
	}

	if err := writeReport(&tbl, report, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestSampleCommandUsesFlags(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, "sample", "--family", "saw", "--terms", "3", "--steps", "5", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	var report sampleReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if report.Family != "sawtooth" || report.Terms != 3 || len(report.Samples) != 5 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestSampleCommandReadsConfigFile(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("epicycles.yaml", []byte("fourier:\n  default_terms: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCmd(t, "sample", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var report sampleReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Terms != 7 {
		t.Fatalf("expected 7 terms from config file, got %d", report.Terms)
	}
}

func TestSampleCommandRejectsOutOfRangeTerms(t *testing.T) {
	isolate(t)
	if _, err := runCmd(t, "sample", "--terms", "500"); err == nil {
		t.Fatal("expected validation error for terms above max")
	}
}

func TestExportCommandWritesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := runCmd(t, "export", "--seconds", "0.1", "--rate", "8000", "--freq", "200", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Wrote 800 samples") {
		t.Fatalf("unexpected output %q", out)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected wav file: %v", err)
	}
	if info.Size() <= 44 {
		t.Fatalf("expected samples after the header, got %d bytes", info.Size())
	}
}

func TestNewLoggerWithoutFileIsNop(t *testing.T) {
	logger, sync, err := newLogger(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sync()
	logger.Info("dropped")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epicycles.log")
	logger, sync, err := newLogger(config.LogConfig{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello from test")
	sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("expected message in log, got %q", data)
	}
}
