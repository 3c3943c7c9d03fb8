// Package export renders a partial sum to a WAV file.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/olivier-w/epicycles/internal/fourier"
)

const (
	bitDepth = 16
	pcm      = 1 // WAVE_FORMAT_PCM
	// room for the Gibbs overshoot of the partial sum
	headroom = 1.25
)

// Options control the rendered tone.
type Options struct {
	SampleRate int
	Frequency  float64
	Seconds    float64
	// Truth renders the ideal waveform instead of the partial sum.
	Truth bool
}

// DefaultOptions renders two seconds of a 220 Hz tone at 44.1 kHz.
func DefaultOptions() Options {
	return Options{SampleRate: 44100, Frequency: 220, Seconds: 2}
}

func (o Options) validate() error {
	switch {
	case o.SampleRate <= 0:
		return fmt.Errorf("sample rate must be positive, got %d", o.SampleRate)
	case o.Frequency <= 0 || o.Frequency*2 >= float64(o.SampleRate):
		return fmt.Errorf("frequency %v must be in (0, %d)", o.Frequency, o.SampleRate/2)
	case o.Seconds <= 0:
		return fmt.Errorf("duration must be positive, got %v", o.Seconds)
	}
	return nil
}

// WriteWAV encodes the chain's partial sum as mono 16-bit PCM and
// returns the number of samples written.
func WriteWAV(w io.WriteSeeker, chain *fourier.Chain, opts Options) (int, error) {
	if chain == nil {
		return 0, errors.New("nil series")
	}
	if err := opts.validate(); err != nil {
		return 0, err
	}

	n := int(math.Round(opts.Seconds * float64(opts.SampleRate)))
	data := make([]int, n)
	step := fourier.Period * opts.Frequency / float64(opts.SampleRate)
	for i := range data {
		t := float64(i) * step
		var v float64
		if opts.Truth {
			v = fourier.TrueValue(chain.Family(), t)
		} else {
			v = chain.ValueAt(t)
		}
		v = math.Max(-1, math.Min(1, v/headroom))
		data[i] = int(v * math.MaxInt16)
	}

	enc := wav.NewEncoder(w, opts.SampleRate, bitDepth, 1, pcm)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: opts.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return 0, fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("finalizing wav: %w", err)
	}
	return n, nil
}
