package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/epicycles/internal/canvas"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	labelStyle = lipgloss.NewStyle().
			Width(8).
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}).
			PaddingLeft(2)

	layerStyles = map[canvas.Layer]lipgloss.Style{
		canvas.LayerGrid:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#3A3A3A"}),
		canvas.LayerCircle: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7799BB", Dark: "#4F6F8F"}),
		canvas.LayerArm:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#3366AA", Dark: "#8FB8E8"}),
		canvas.LayerTruth:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"}),
		canvas.LayerTrace:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D2691E", Dark: "#FF8C00"}),
		canvas.LayerMarker: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF5F1F"}),
	}
)
