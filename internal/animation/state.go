package animation

import (
	"fmt"
	"strings"
)

// PlayState is the play/pause state of the animation.
type PlayState int

const (
	Playing PlayState = iota
	Paused
)

// Toggle flips between playing and paused.
func (s PlayState) Toggle() PlayState {
	switch s {
	case Playing:
		return Paused
	default:
		return Playing
	}
}

// String returns the status label shown in the overlay.
func (s PlayState) String() string {
	switch s {
	case Paused:
		return "PAUSED"
	default:
		return "PLAYING"
	}
}

// Icon returns a visual indicator for the state.
func (s PlayState) Icon() string {
	switch s {
	case Paused:
		return "❚❚"
	default:
		return "▶"
	}
}

// WrapMode controls how time is brought back into [0, 2π) at the end of
// a period.
type WrapMode int

const (
	// WrapCarry subtracts one period and keeps the remainder, so the
	// phase stays continuous across the boundary.
	WrapCarry WrapMode = iota
	// WrapZero restarts each period at exactly 0, dropping the remainder.
	WrapZero
)

func (w WrapMode) String() string {
	switch w {
	case WrapZero:
		return "zero"
	default:
		return "carry"
	}
}

// ParseWrapMode parses "carry" or "zero".
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "carry", "":
		return WrapCarry, nil
	case "zero":
		return WrapZero, nil
	}
	return WrapCarry, fmt.Errorf("unknown wrap mode %q", s)
}
