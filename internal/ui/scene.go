package ui

import (
	"math"

	"github.com/olivier-w/epicycles/internal/animation"
	"github.com/olivier-w/epicycles/internal/canvas"
	"github.com/olivier-w/epicycles/internal/fourier"
)

const (
	gridSpacing = 16
	// fraction of the shorter canvas side the full chain may cover
	fitRatio = 0.45
	// vertical range of the wave strip; leaves room for Gibbs overshoot
	waveRange = 1.3
)

// projection centers the chain on a w x h dot canvas. A fixed scale > 0
// is used as is, otherwise the chain's reach is fitted to the canvas.
func projection(w, h int, reach, fixedScale float64) (fourier.Point, float64) {
	origin := fourier.Point{X: float64(w) / 2, Y: float64(h) / 2}
	if fixedScale > 0 {
		return origin, fixedScale
	}
	if reach <= 0 {
		reach = 1
	}
	return origin, fitRatio * float64(min(w, h)) / reach
}

// toScreen mirrors a projected point around the origin row: terminal
// rows grow downward, the series' vertical axis grows upward.
func toScreen(p, origin fourier.Point) (float64, float64) {
	return p.X, 2*origin.Y - p.Y
}

func drawGrid(c *canvas.Canvas, origin fourier.Point) {
	w, h := c.DotSize()
	ox, oy := int(math.Round(origin.X)), int(math.Round(origin.Y))
	for x := 0; x < w; x++ {
		if x%2 == 0 {
			c.Set(x, oy, canvas.LayerGrid)
		}
		if (x-ox)%gridSpacing == 0 {
			for y := 0; y < h; y += 4 {
				c.Set(x, y, canvas.LayerGrid)
			}
		}
	}
	for y := 0; y < h; y++ {
		if y%2 == 0 {
			c.Set(ox, y, canvas.LayerGrid)
		}
		if (y-oy)%gridSpacing == 0 {
			for x := 0; x < w; x += 4 {
				c.Set(x, y, canvas.LayerGrid)
			}
		}
	}
}

// drawChain paints circles, arms, the trace and the final point.
func drawChain(c *canvas.Canvas, snap animation.Snapshot, origin fourier.Point, grid bool) {
	c.Clear()
	if grid {
		drawGrid(c, origin)
	}

	for i, e := range snap.Epicycles {
		cx, cy := toScreen(snap.Points[i], origin)
		nx, ny := toScreen(snap.Points[i+1], origin)
		c.Circle(cx, cy, e.Amplitude*snap.Scale, canvas.LayerCircle)
		c.Line(cx, cy, nx, ny, canvas.LayerArm)
	}

	xs := make([]float64, len(snap.Trace))
	ys := make([]float64, len(snap.Trace))
	for i, p := range snap.Trace {
		xs[i], ys[i] = toScreen(p, origin)
	}
	c.Polyline(xs, ys, canvas.LayerTrace)

	fx, fy := toScreen(snap.Final, origin)
	c.Point(fx, fy, canvas.LayerMarker)
	c.Point(fx-1, fy, canvas.LayerMarker)
	c.Point(fx+1, fy, canvas.LayerMarker)
	c.Point(fx, fy-1, canvas.LayerMarker)
	c.Point(fx, fy+1, canvas.LayerMarker)
}

// drawWave plots one period of the ground truth and of the partial sum
// with a cursor at the current time.
func drawWave(c *canvas.Canvas, snap animation.Snapshot, valueAt func(float64) float64) {
	c.Clear()
	w, h := c.DotSize()
	toY := func(v float64) float64 {
		return (1 - (v+waveRange)/(2*waveRange)) * float64(h-1)
	}
	tAt := func(x int) float64 {
		return float64(x) / float64(max(w-1, 1)) * fourier.Period
	}

	zero := int(math.Round(toY(0)))
	for x := 0; x < w; x += 2 {
		c.Set(x, zero, canvas.LayerGrid)
	}

	xs := make([]float64, w)
	truth := make([]float64, w)
	approx := make([]float64, w)
	for x := range w {
		t := tAt(x)
		xs[x] = float64(x)
		// sample just inside the period so the last column is not the
		// wrapped start value
		if x == w-1 {
			t = math.Nextafter(fourier.Period, 0)
		}
		truth[x] = toY(fourier.TrueValue(snap.Family, t))
		approx[x] = toY(valueAt(t))
	}
	c.Polyline(xs, truth, canvas.LayerTruth)
	c.Polyline(xs, approx, canvas.LayerTrace)

	cursor := snap.Time / fourier.Period * float64(max(w-1, 1))
	for y := 0; y < h; y += 3 {
		c.Point(cursor, float64(y), canvas.LayerMarker)
	}
	c.Point(cursor, toY(snap.Approximation), canvas.LayerMarker)
}
