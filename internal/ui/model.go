package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/canvas"
	"github.com/olivier-w/epicycles/internal/fourier"
	"github.com/olivier-w/epicycles/internal/tone"
)

const (
	panelWidth = 34
	waveRows   = 4
	speedStep  = 5

	defaultWidth  = 100
	defaultHeight = 30
)

// Settings are the rendering options taken from configuration.
type Settings struct {
	FPS           int
	Grid          bool
	ShowWave      bool
	EpicycleScale float64
}

// Model is the Bubbletea model driving the animation.
type Model struct {
	anim     *animation.Animator
	settings Settings
	tone     *tone.Player
	toneRev  int
	log      *zap.Logger

	keys     keyMap
	help     help.Model
	termsBar progress.Model
	speedBar progress.Model
	errBar   progress.Model
	errShown smoothed

	width    int
	height   int
	main     *canvas.Canvas
	wave     *canvas.Canvas
	origin   fourier.Point
	quitting bool
}

// New creates a Model. player may be nil when audio is disabled.
func New(anim *animation.Animator, settings Settings, player *tone.Player, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.FPS <= 0 {
		settings.FPS = 30
	}
	m := Model{
		anim:     anim,
		settings: settings,
		tone:     player,
		toneRev:  -1,
		log:      logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		termsBar: newSlider("#5A56E0", "#8FB8E8"),
		speedBar: newSlider("#2E8B57", "#7FD1A6"),
		errBar:   newSlider("#FF8C00", "#FF5F1F"),
		errShown: newSmoothed(settings.FPS, 6.0, 1.0),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.layout()
	m.syncTone()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.settings.FPS), tea.SetWindowTitle(m.windowTitle()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		res := m.anim.Tick()
		if res.Wrapped {
			m.log.Debug("period wrapped", zap.Float64("time", m.anim.Time()))
		}
		m.syncProjection()
		if res.Advanced {
			m.errShown.step(m.anim.Snapshot().Error)
		}
		return m, tickCmd(m.settings.FPS)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Pause):
		state := m.anim.TogglePause()
		if m.tone != nil {
			m.tone.SetPaused(state == animation.Paused)
		}
		return m, tea.SetWindowTitle(m.windowTitle())

	case key.Matches(msg, m.keys.Reset):
		m.anim.Reset()
		m.errShown.reset(0)

	case key.Matches(msg, m.keys.MoreTerms):
		m.anim.StepTerms(1)
	case key.Matches(msg, m.keys.FewerTerms):
		m.anim.StepTerms(-1)

	case key.Matches(msg, m.keys.Faster):
		m.anim.StepSpeed(speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.anim.StepSpeed(-speedStep)

	case key.Matches(msg, m.keys.Family):
		m.anim.CycleFamily()
	case key.Matches(msg, m.keys.Rectangular):
		m.anim.SetFamily(fourier.Rectangular)
	case key.Matches(msg, m.keys.Sawtooth):
		m.anim.SetFamily(fourier.Sawtooth)

	case key.Matches(msg, m.keys.Grid):
		m.settings.Grid = !m.settings.Grid
		return m, nil
	case key.Matches(msg, m.keys.Wave):
		m.settings.ShowWave = !m.settings.ShowWave
		m.layout()
		return m, nil

	default:
		return m, nil
	}

	var cmd tea.Cmd
	if m.toneRev != m.anim.Revision() {
		m.log.Debug("series changed",
			zap.Stringer("family", m.anim.Family()),
			zap.Int("terms", m.anim.Terms()),
		)
		m.errShown.reset(0)
		cmd = tea.SetWindowTitle(m.windowTitle())
	}
	m.syncTone()
	m.syncProjection()
	return m, cmd
}

// layout sizes the canvases to the window.
func (m *Model) layout() {
	overhead := 8
	if m.settings.ShowWave {
		overhead += waveRows
	}
	cols := max(m.width-panelWidth-4, 10)
	rows := max(m.height-overhead, 4)

	m.main = canvas.New(cols, rows)
	m.wave = nil
	if m.settings.ShowWave {
		m.wave = canvas.New(cols, waveRows)
	}
	m.syncProjection()
}

// syncProjection keeps the animator's projection centered on the canvas.
// The animator ignores calls that change nothing.
func (m *Model) syncProjection() {
	if m.main == nil {
		return
	}
	w, h := m.main.DotSize()
	origin, scale := projection(w, h, m.anim.Reach(), m.settings.EpicycleScale)
	m.origin = origin
	m.anim.SetProjection(origin, scale)
}

// syncTone hands a regenerated series to the audio preview. toneRev
// doubles as the "last seen revision" when audio is off.
func (m *Model) syncTone() {
	rev := m.anim.Revision()
	if rev == m.toneRev {
		return
	}
	m.toneRev = rev
	if m.tone != nil {
		m.tone.Synth().SetEpicycles(m.anim.Epicycles())
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.anim.Snapshot()
	drawChain(m.main, snap, m.origin, m.settings.Grid)

	header := headerStyle.Render("epicycles") + "  " + statusStyle.Render(fmt.Sprintf("%d-term %s series", snap.Terms, snap.Family))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.main.Render(layerStyles),
		"  ",
		renderPanel(snap, m.errBar, m.errShown.pos),
	)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(indent(header) + "\n")
	b.WriteString("\n")
	b.WriteString(indent(body) + "\n")
	if m.wave != nil {
		drawWave(m.wave, snap, m.anim.ValueAt)
		b.WriteString(indent(m.wave.Render(layerStyles)) + "\n")
	}
	b.WriteString("\n")
	minT, maxT := m.anim.TermBounds()
	minS, maxS := m.anim.SpeedBounds()
	b.WriteString(indent(renderSlider(m.termsBar, "Terms", snap.Terms, minT, maxT)) + "\n")
	b.WriteString(indent(renderSlider(m.speedBar, "Speed", snap.Speed, minS, maxS)) + "\n")
	b.WriteString("\n")
	b.WriteString(indent(m.help.View(m.keys)) + "\n")

	return padLines(b.String(), m.height)
}

func (m Model) windowTitle() string {
	title := m.anim.Family().Title() + " — epicycles"
	if m.anim.State() == animation.Paused {
		return "⏸ " + title
	}
	return "▶ " + title
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
