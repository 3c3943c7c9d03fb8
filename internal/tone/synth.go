package tone

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/olivier-w/epicycles/internal/fourier"
)

const (
	SampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
	frameSize    = channelCount * bitDepth

	// Partial sums overshoot ±1 near discontinuities (Gibbs), so the
	// signal is scaled down to keep the peaks inside int16.
	headroom = 1.25
)

// Synth renders a partial sum as a periodic tone. It is an io.Reader of
// 16-bit little-endian stereo PCM and is safe to reconfigure while a
// player goroutine is reading from it.
type Synth struct {
	mu     sync.Mutex
	cycles []fourier.Epicycle
	freq   float64
	phase  float64
}

// NewSynth creates a silent synth playing at freq Hz once it has
// epicycles.
func NewSynth(freq float64) *Synth {
	return &Synth{freq: freq}
}

// SetEpicycles swaps the series being played. The running phase is
// kept so the change does not click more than it has to.
func (s *Synth) SetEpicycles(cycles []fourier.Epicycle) {
	cp := make([]fourier.Epicycle, len(cycles))
	copy(cp, cycles)
	s.mu.Lock()
	s.cycles = cp
	s.mu.Unlock()
}

// Read fills p with whole frames.
func (s *Synth) Read(p []byte) (int, error) {
	frames := len(p) / frameSize
	step := 2 * math.Pi * s.freq / SampleRate

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range frames {
		v := int16(sampleValue(s.cycles, s.phase) * math.MaxInt16)
		off := i * frameSize
		binary.LittleEndian.PutUint16(p[off:], uint16(v))
		binary.LittleEndian.PutUint16(p[off+bitDepth:], uint16(v))
		s.phase += step
		if s.phase >= fourier.Period {
			s.phase -= fourier.Period
		}
	}
	return frames * frameSize, nil
}

// sampleValue returns the partial sum at phase t scaled into [-1, 1].
func sampleValue(cycles []fourier.Epicycle, t float64) float64 {
	var sum float64
	for _, e := range cycles {
		sum += e.Amplitude * math.Sin(e.At(t).Angle)
	}
	v := sum / headroom
	return math.Max(-1, math.Min(1, v))
}
