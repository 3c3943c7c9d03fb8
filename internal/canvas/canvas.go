// Package canvas draws points, lines and circles onto a grid of Unicode
// Braille characters. Each cell is a 2x4 dot grid, giving 2x horizontal
// and 4x vertical resolution.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layer tags what a cell shows. When several layers hit one cell the
// highest wins for styling.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerGrid
	LayerCircle
	LayerArm
	LayerTruth
	LayerTrace
	LayerMarker
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Canvas is a cols x rows cell grid.
type Canvas struct {
	cols   int
	rows   int
	cells  []uint8
	layers []Layer
}

// New creates a canvas; sizes below 1 are raised to 1.
func New(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Canvas{
		cols:   cols,
		rows:   rows,
		cells:  make([]uint8, cols*rows),
		layers: make([]Layer, cols*rows),
	}
}

// DotSize returns the canvas size in dots.
func (c *Canvas) DotSize() (w, h int) {
	return c.cols * 2, c.rows * 4
}

// Clear removes every dot.
func (c *Canvas) Clear() {
	clear(c.cells)
	clear(c.layers)
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, layer Layer) {
	w, h := c.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := (y/4)*c.cols + x/2
	c.cells[i] |= 1 << brailleBits[x%2][y%4]
	if layer > c.layers[i] {
		c.layers[i] = layer
	}
}

// lit reports whether the dot at (x, y) is set.
func (c *Canvas) lit(x, y int) bool {
	w, h := c.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return c.cells[(y/4)*c.cols+x/2]&(1<<brailleBits[x%2][y%4]) != 0
}

// Point lights the dot nearest to (x, y).
func (c *Canvas) Point(x, y float64, layer Layer) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	c.Set(int(math.Round(x)), int(math.Round(y)), layer)
}

// Line draws a straight line between two dot positions.
func (c *Canvas) Line(x0, y0, x1, y1 float64, layer Layer) {
	ax, ay := int(math.Round(x0)), int(math.Round(y0))
	bx, by := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	// Bounded so a wild coordinate cannot spin for long.
	limit := 4 * (c.cols*2 + c.rows*4)
	e := dx + dy
	for range limit {
		c.Set(ax, ay, layer)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// Polyline joins consecutive points with lines.
func (c *Canvas) Polyline(xs, ys []float64, layer Layer) {
	n := min(len(xs), len(ys))
	if n == 1 {
		c.Point(xs[0], ys[0], layer)
	}
	for i := 1; i < n; i++ {
		c.Line(xs[i-1], ys[i-1], xs[i], ys[i], layer)
	}
}

// Circle draws the outline of a circle centered on (cx, cy).
func (c *Canvas) Circle(cx, cy, r float64, layer Layer) {
	if r < 0.5 {
		c.Point(cx, cy, layer)
		return
	}
	w, h := c.DotSize()
	steps := max(int(min(2*math.Pi*r, float64(4*(w+h)))), 8)
	// keep the four compass points on exact angles
	steps += (4 - steps%4) % 4
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Point(cx+r*math.Cos(a), cy+r*math.Sin(a), layer)
	}
}

// Rows returns each row of cells as plain text.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.rows)
	for r := range c.rows {
		var line strings.Builder
		for col := range c.cols {
			line.WriteRune(rune(0x2800 + int(c.cells[r*c.cols+col])))
		}
		rows[r] = line.String()
	}
	return rows
}


// Render styles runs of cells by layer. A nil style leaves a layer
// unstyled.
func (c *Canvas) Render(styles map[Layer]lipgloss.Style) string {
	rows := make([]string, c.rows)
	for r := range c.rows {
		var line, run strings.Builder
		cur := LayerNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := styles[cur]; ok {
				line.WriteString(st.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for col := range c.cols {
			i := r*c.cols + col
			if c.layers[i] != cur {
				flush()
				cur = c.layers[i]
			}
			run.WriteRune(rune(0x2800 + int(c.cells[i])))
		}
		flush()
		rows[r] = line.String()
	}
	return strings.Join(rows, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
