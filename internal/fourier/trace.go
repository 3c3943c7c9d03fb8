package fourier

// TraceBuffer is a bounded FIFO of final-point positions. Pushing past
// capacity evicts the oldest point.
type TraceBuffer struct {
	buf  []Point
	size int
	w    int // write position
	len  int // current fill level
}

// NewTraceBuffer creates a buffer holding at most capacity points.
// A capacity below 1 is raised to 1.
func NewTraceBuffer(capacity int) *TraceBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &TraceBuffer{
		buf:  make([]Point, capacity),
		size: capacity,
	}
}

// Push appends p, overwriting the oldest point when full.
func (tb *TraceBuffer) Push(p Point) {
	tb.buf[tb.w] = p
	tb.w = (tb.w + 1) % tb.size
	if tb.len < tb.size {
		tb.len++
	}
}

// Contents returns the buffered points, oldest first.
func (tb *TraceBuffer) Contents() []Point {
	if tb.len == 0 {
		return nil
	}
	out := make([]Point, tb.len)
	start := (tb.w - tb.len + tb.size) % tb.size
	for i := range tb.len {
		out[i] = tb.buf[(start+i)%tb.size]
	}
	return out
}

// Clear empties the buffer. Storage is kept.
func (tb *TraceBuffer) Clear() {
	tb.w = 0
	tb.len = 0
}

func (tb *TraceBuffer) Len() int { return tb.len }
func (tb *TraceBuffer) Cap() int { return tb.size }
