package fourier

import "math"

// Point is a 2-D coordinate on the projection plane.
type Point struct {
	X float64
	Y float64
}

// Chain is the animated state of one series: the family, its epicycles
// in generation order, and the current time. It is owned by a single
// driver and is not safe for concurrent use.
type Chain struct {
	family Family
	cycles []Epicycle
	time   float64
}

// NewChain builds a chain at t = 0.
func NewChain(f Family, n int) (*Chain, error) {
	c := &Chain{}
	if err := c.Regenerate(f, n); err != nil {
		return nil, err
	}
	return c, nil
}

// Regenerate replaces the whole coefficient set. Angles are re-derived
// from the current time. On error the chain is left untouched.
func (c *Chain) Regenerate(f Family, n int) error {
	cycles, err := Generate(f, n)
	if err != nil {
		return err
	}
	c.family = f
	c.cycles = cycles
	c.Advance(c.time)
	return nil
}

// Advance sets the chain's time and recomputes every angle.
func (c *Chain) Advance(t float64) {
	c.time = t
	for i := range c.cycles {
		c.cycles[i] = c.cycles[i].At(t)
	}
}

func (c *Chain) Family() Family { return c.family }
func (c *Chain) Terms() int     { return len(c.cycles) }
func (c *Chain) Time() float64  { return c.time }

// Epicycles returns a copy of the current epicycles.
func (c *Chain) Epicycles() []Epicycle {
	out := make([]Epicycle, len(c.cycles))
	copy(out, c.cycles)
	return out
}

// Project walks the epicycles in stored order, placing each circle on
// the end of the previous arm. The result has Terms()+1 points and
// starts at the origin.
func (c *Chain) Project(originX, originY, scale float64) []Point {
	points := make([]Point, 0, len(c.cycles)+1)
	cur := Point{X: originX, Y: originY}
	points = append(points, cur)
	for _, e := range c.cycles {
		r := e.Amplitude * scale
		cur.X += r * math.Cos(e.Angle)
		cur.Y += r * math.Sin(e.Angle)
		points = append(points, cur)
	}
	return points
}

// FinalPoint is the last point of Project: the partial-sum endpoint.
func (c *Chain) FinalPoint(originX, originY, scale float64) Point {
	points := c.Project(originX, originY, scale)
	return points[len(points)-1]
}

// Approximation is the vertical component of the partial sum at the
// chain's current time: Σ amplitude·sin(angle).
func (c *Chain) Approximation() float64 {
	var sum float64
	for _, e := range c.cycles {
		sum += e.Amplitude * math.Sin(e.Angle)
	}
	return sum
}

// ValueAt evaluates the partial sum at an arbitrary time without
// touching the chain's state.
func (c *Chain) ValueAt(t float64) float64 {
	var sum float64
	for _, e := range c.cycles {
		sum += e.Amplitude * math.Sin(e.At(t).Angle)
	}
	return sum
}

// TrueValue is the ground truth of the chain's family at its time.
func (c *Chain) TrueValue() float64 {
	return TrueValue(c.family, c.time)
}

// Error is SquaredError against the chain's own family.
func (c *Chain) Error() float64 {
	return SquaredError(c.family, c)
}

// SquaredError is the instantaneous error (true − approximation)² of c
// measured against family f at the chain's time. It is not integrated
// over the period.
func SquaredError(f Family, c *Chain) float64 {
	d := TrueValue(f, c.time) - c.Approximation()
	return d * d
}

// Reach is the sum of all amplitudes, the farthest the final point can
// get from the origin at scale 1.
func (c *Chain) Reach() float64 {
	var r float64
	for _, e := range c.cycles {
		r += e.Amplitude
	}
	return r
}
