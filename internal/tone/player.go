package tone

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Player streams a Synth to the default audio device.
type Player struct {
	synth  *Synth
	player *oto.Player
	mu     sync.Mutex
	closed bool
}

// NewPlayer opens the audio device and starts playing synth.
func NewPlayer(synth *Synth, volume float64) (*Player, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, err
	}
	p := &Player{synth: synth, player: ctx.NewPlayer(synth)}
	p.player.SetVolume(volume)
	p.player.Play()
	return p, nil
}

// Synth returns the synth being played.
func (p *Player) Synth() *Synth { return p.synth }

// SetPaused pauses or resumes output.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if paused {
		p.player.Pause()
	} else {
		p.player.Play()
	}
}

// Close stops playback and reports any error the device hit while
// playing. It is safe to call more than once.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.player.Pause()
	return p.player.Err()
}
