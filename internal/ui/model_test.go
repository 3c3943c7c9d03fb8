package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/fourier"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	anim, err := animation.New(animation.Options{
		MinTerms:      1,
		MaxTerms:      10,
		DefaultTerms:  3,
		DefaultFamily: fourier.Rectangular,
		MinSpeed:      1,
		MaxSpeed:      100,
		DefaultSpeed:  50,
		SpeedScale:    1.0 / 2500,
		TraceCapacity: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return New(anim, Settings{FPS: 30, Grid: true, ShowWave: true}, nil, nil)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickAdvancesAnimation(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.handleMsg(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected next tick to be scheduled")
	}
	if got := next.anim.Time(); got <= 0 {
		t.Fatalf("expected time to advance, got %v", got)
	}
	if len(next.anim.Snapshot().Trace) != 1 {
		t.Fatal("expected one traced point")
	}
}

func TestSpaceTogglesPause(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if next.anim.State() != animation.Paused {
		t.Fatal("expected paused after space")
	}
	if cmd == nil {
		t.Fatal("expected window title command")
	}

	before := next.anim.Time()
	next, _ = next.handleMsg(tickMsg(time.Now()))
	if next.anim.Time() != before {
		t.Fatal("expected paused tick not to advance time")
	}
}

func TestArrowKeysChangeTermsWithinBounds(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.handleMsg(tea.KeyMsg{Type: tea.KeyRight})
	if next.anim.Terms() != 4 {
		t.Fatalf("expected 4 terms, got %d", next.anim.Terms())
	}
	for range 20 {
		next, _ = next.handleMsg(tea.KeyMsg{Type: tea.KeyRight})
	}
	if next.anim.Terms() != 10 {
		t.Fatalf("expected clamp at 10 terms, got %d", next.anim.Terms())
	}
	for range 20 {
		next, _ = next.handleMsg(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if next.anim.Terms() != 1 {
		t.Fatalf("expected clamp at 1 term, got %d", next.anim.Terms())
	}
}

func TestFamilyKeysSwitchWaveform(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tickMsg(time.Now()))
	next, cmd := m.handleMsg(runes("2"))
	if next.anim.Family() != fourier.Sawtooth {
		t.Fatalf("expected sawtooth, got %s", next.anim.Family())
	}
	if next.anim.Time() != 0 {
		t.Fatal("expected family switch to reset time")
	}
	if cmd == nil {
		t.Fatal("expected window title update on family switch")
	}
	next, _ = next.handleMsg(runes("f"))
	if next.anim.Family() != fourier.Rectangular {
		t.Fatalf("expected cycle back to rectangular, got %s", next.anim.Family())
	}
}

func TestResetKeyKeepsPause(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tickMsg(time.Now()))
	m, _ = m.handleMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	next, _ := m.handleMsg(runes("r"))
	if next.anim.Time() != 0 {
		t.Fatal("expected reset to zero time")
	}
	if next.anim.State() != animation.Paused {
		t.Fatal("expected reset to keep paused state")
	}
}

func TestSpeedKeys(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.handleMsg(tea.KeyMsg{Type: tea.KeyUp})
	if next.anim.Speed() != 55 {
		t.Fatalf("expected speed 55, got %d", next.anim.Speed())
	}
	next, _ = next.handleMsg(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.handleMsg(tea.KeyMsg{Type: tea.KeyDown})
	if next.anim.Speed() != 45 {
		t.Fatalf("expected speed 45, got %d", next.anim.Speed())
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.handleMsg(runes("q"))
	if !next.quitting || cmd == nil {
		t.Fatal("expected quit")
	}
	if next.View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}

func TestWindowSizeResizesCanvasAndClearsTrace(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tickMsg(time.Now()))
	next, _ := m.handleMsg(tea.WindowSizeMsg{Width: 120, Height: 40})
	w, h := next.main.DotSize()
	if w != (120-panelWidth-4)*2 || h != (40-8-waveRows)*4 {
		t.Fatalf("unexpected canvas size %dx%d", w, h)
	}
	if next.anim.Snapshot().Trace != nil {
		t.Fatal("expected trace cleared by new projection")
	}
	if next.origin.X != float64(w)/2 || next.origin.Y != float64(h)/2 {
		t.Fatalf("expected centered origin, got %+v", next.origin)
	}
}

func TestWaveKeyTogglesStrip(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.handleMsg(runes("w"))
	if next.wave != nil {
		t.Fatal("expected wave strip hidden")
	}
	next, _ = next.handleMsg(runes("w"))
	if next.wave == nil {
		t.Fatal("expected wave strip shown")
	}
}

func TestViewShowsOverlayAndFillsHeight(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 110, Height: 36})
	m, _ = m.handleMsg(tickMsg(time.Now()))

	view := m.View()
	for _, want := range []string{"Rectangular", "Approx", "True", "Error", "PLAYING", "Terms", "Speed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
	if lipgloss.Height(view) < 36 {
		t.Fatalf("expected view height >= 36, got %d", lipgloss.Height(view))
	}
}

func TestProjectionFitsReach(t *testing.T) {
	origin, scale := projection(200, 100, 2, 0)
	if origin.X != 100 || origin.Y != 50 {
		t.Fatalf("unexpected origin %+v", origin)
	}
	if scale != fitRatio*100/2 {
		t.Fatalf("unexpected scale %v", scale)
	}
	if _, fixed := projection(200, 100, 2, 7); fixed != 7 {
		t.Fatalf("expected fixed scale 7, got %v", fixed)
	}
}
