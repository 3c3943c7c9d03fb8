package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/util"
)

const sliderWidth = 20

func newSlider(from, to string) progress.Model {
	return progress.New(
		progress.WithScaledGradient(from, to),
		progress.WithoutPercentage(),
		progress.WithWidth(sliderWidth),
	)
}

// sliderRatio maps v in [lo, hi] to [0, 1].
func sliderRatio(v, lo, hi int) float64 {
	if hi <= lo {
		return 1
	}
	r := float64(v-lo) / float64(hi-lo)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func renderSlider(bar progress.Model, label string, v, lo, hi int) string {
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(label),
		bar.ViewAs(sliderRatio(v, lo, hi)),
		valueStyle.Render(fmt.Sprintf("%d", v)),
	)
}

func renderStat(label, value string) string {
	return labelStyle.Render(label) + " " + valueStyle.Render(value)
}

// renderPanel is the numeric overlay next to the canvas.
func renderPanel(snap animation.Snapshot, gauge progress.Model, shownErr float64) string {
	lines := []string{
		titleStyle.Render(snap.Family.Title()),
		"",
		renderStat("Terms", fmt.Sprintf("%d", snap.Terms)),
		renderStat("Time", util.FormatTime(snap.Time)),
		renderStat("Approx", util.FormatSigned(snap.Approximation, 3)),
		renderStat("True", util.FormatSigned(snap.TrueValue, 3)),
		renderStat("Error", fmt.Sprintf("%.6f", snap.Error)),
		labelStyle.Render("") + " " + gauge.ViewAs(clamp01(shownErr)),
		renderStat("Period", fmt.Sprintf("%d", snap.Periods+1)),
		renderStat("Trace", fmt.Sprintf("%d/%d", snap.TraceLen, snap.TraceCap)),
		"",
		statusStyle.Render(fmt.Sprintf("%s  %s", snap.State.Icon(), snap.State)),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// padLines pads s with blank lines up to height rows.
func padLines(s string, height int) string {
	if missing := height - lipgloss.Height(s); missing > 0 {
		s += strings.Repeat("\n", missing)
	}
	return s
}
