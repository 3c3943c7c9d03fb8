package util

import (
	"fmt"
	"math"
)

// FormatTime formats a time in radians together with the fraction of
// the period it represents, e.g. "3.14 (0.50T)".
func FormatTime(t float64) string {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	return fmt.Sprintf("%.2f (%.2fT)", t, t/(2*math.Pi))
}

// FormatSigned formats v with a fixed number of decimals and an explicit
// sign so columns do not jump as values cross zero.
func FormatSigned(v float64, decimals int) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return fmt.Sprintf("%+.*f", decimals, v)
}
