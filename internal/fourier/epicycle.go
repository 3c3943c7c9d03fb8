package fourier

import (
	"errors"
	"fmt"
)

// ErrInvalidTermCount is returned when a series is requested with fewer
// than one term.
var ErrInvalidTermCount = errors.New("invalid term count")

// Epicycle is one rotating-circle term of a truncated Fourier series.
// Phase is always 0 or π; the sign of a coefficient lives there, so
// Amplitude is never negative.
type Epicycle struct {
	Frequency int
	Amplitude float64
	Phase     float64
	Angle     float64
}

// At returns a copy of e with Angle derived for time t. No range
// reduction is applied.
func (e Epicycle) At(t float64) Epicycle {
	e.Angle = float64(e.Frequency)*t + e.Phase
	return e
}

// Generate returns the first n harmonics of the family's series in
// generation order. Angles are those at t = 0.
func Generate(f Family, n int) ([]Epicycle, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTermCount, n)
	}
	cycles := make([]Epicycle, n)
	for k := 1; k <= n; k++ {
		cycles[k-1] = f.term(k).At(0)
	}
	return cycles, nil
}
