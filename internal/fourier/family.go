package fourier

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Period is the length of one cycle of every supported waveform.
const Period = 2 * math.Pi

// Family selects a target waveform. It determines both the coefficient
// formula and the ground-truth formula, so the two never drift apart.
type Family int

const (
	Rectangular Family = iota
	Sawtooth
)

var titleCaser = cases.Title(language.English)

// Families returns all supported families in display order.
func Families() []Family {
	return []Family{Rectangular, Sawtooth}
}

// Next cycles to the next family: rectangular → sawtooth → rectangular.
func (f Family) Next() Family {
	switch f {
	case Rectangular:
		return Sawtooth
	default:
		return Rectangular
	}
}

// String returns the lowercase config name of the family.
func (f Family) String() string {
	switch f {
	case Sawtooth:
		return "sawtooth"
	default:
		return "rectangular"
	}
}

// Title returns the display name, e.g. "Sawtooth".
func (f Family) Title() string {
	return titleCaser.String(f.String())
}

// ParseFamily accepts the config names plus "square" and "saw".
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular", "square", "rect":
		return Rectangular, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	}
	names := make([]string, 0, len(Families()))
	for _, f := range Families() {
		names = append(names, f.String())
	}
	return Rectangular, fmt.Errorf("unknown waveform family %q (want one of %s)", s, strings.Join(names, ", "))
}

// term returns the descriptor of the k-th harmonic (k starts at 1).
func (f Family) term(k int) Epicycle {
	switch f {
	case Sawtooth:
		sign := 1.0
		if k%2 == 0 {
			sign = -1
		}
		e := Epicycle{
			Frequency: k,
			Amplitude: math.Abs((2 / math.Pi) * sign / float64(k)),
		}
		if sign < 0 {
			e.Phase = math.Pi
		}
		return e
	default:
		freq := 2*k - 1
		return Epicycle{
			Frequency: freq,
			Amplitude: (4 / math.Pi) * (1 / float64(freq)),
		}
	}
}

// TrueValue returns the exact value of the idealized waveform at t.
// Any real t is folded into [0, 2π) first, negative values included.
func TrueValue(f Family, t float64) float64 {
	n := normalize(t)
	switch f {
	case Sawtooth:
		return -1 + 2*n/Period
	default:
		if n < math.Pi {
			return 1
		}
		return -1
	}
}

func normalize(t float64) float64 {
	n := math.Mod(math.Mod(t, Period)+Period, Period)
	// Mod can round a tiny negative t up to exactly Period.
	if n >= Period {
		n = 0
	}
	return n
}
