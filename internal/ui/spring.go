package ui

import "github.com/charmbracelet/harmonica"

// smoothed eases a displayed value toward its target once per tick so
// gauges do not flicker at discontinuities.
type smoothed struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newSmoothed(fps int, frequency, damping float64) smoothed {
	return smoothed{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *smoothed) step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

func (s *smoothed) reset(v float64) {
	s.pos = v
	s.vel = 0
}
