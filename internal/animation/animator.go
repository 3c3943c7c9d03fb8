package animation

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/olivier-w/epicycles/internal/fourier"
)

// Options are the validated values the animator is built from.
type Options struct {
	MinTerms      int
	MaxTerms      int
	DefaultTerms  int
	DefaultFamily fourier.Family

	MinSpeed     int
	MaxSpeed     int
	DefaultSpeed int
	// SpeedScale maps one unit of speed to radians per tick.
	SpeedScale float64

	TraceCapacity int
	WrapMode      WrapMode

	Logger *zap.Logger
}

// TickResult reports what a single Tick did.
type TickResult struct {
	Advanced bool
	Wrapped  bool
}

// Animator drives one chain and its trace, one tick at a time. It is
// only used from a single goroutine (the bubbletea Update loop).
type Animator struct {
	opts    Options
	log     *zap.Logger
	chain   *fourier.Chain
	trace   *fourier.TraceBuffer
	state   PlayState
	speed   int
	origin  fourier.Point
	scale   float64
	periods int
	rev     int
}

// New builds an animator in the Playing state at t = 0.
func New(opts Options) (*Animator, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MinTerms < 1 {
		opts.MinTerms = 1
	}
	if opts.MaxTerms < opts.MinTerms {
		return nil, fmt.Errorf("max terms %d below min terms %d", opts.MaxTerms, opts.MinTerms)
	}
	if opts.MaxSpeed < opts.MinSpeed {
		return nil, fmt.Errorf("max speed %d below min speed %d", opts.MaxSpeed, opts.MinSpeed)
	}
	if !(opts.SpeedScale > 0) || math.IsInf(opts.SpeedScale, 0) {
		return nil, fmt.Errorf("speed scale must be positive and finite, got %v", opts.SpeedScale)
	}

	chain, err := fourier.NewChain(opts.DefaultFamily, clampInt(opts.DefaultTerms, opts.MinTerms, opts.MaxTerms))
	if err != nil {
		return nil, fmt.Errorf("building series: %w", err)
	}

	a := &Animator{
		opts:  opts,
		log:   opts.Logger,
		chain: chain,
		trace: fourier.NewTraceBuffer(opts.TraceCapacity),
		speed: clampInt(opts.DefaultSpeed, opts.MinSpeed, opts.MaxSpeed),
		scale: 1,
	}
	a.log.Debug("animator ready",
		zap.Stringer("family", chain.Family()),
		zap.Int("terms", chain.Terms()),
		zap.Int("speed", a.speed),
		zap.Stringer("wrap", opts.WrapMode),
	)
	return a, nil
}

// Step is the time increment applied per tick at the current speed.
func (a *Animator) Step() float64 {
	return float64(a.speed) * a.opts.SpeedScale
}

// Tick advances time by one step, wrapping at the end of a period, then
// projects the chain and records its final point. Paused animators do
// nothing.
func (a *Animator) Tick() TickResult {
	if a.state == Paused {
		return TickResult{}
	}
	var res TickResult
	t := a.chain.Time() + a.Step()
	if t >= fourier.Period {
		t = a.wrap(t)
		a.trace.Clear()
		a.periods++
		res.Wrapped = true
	}
	a.chain.Advance(t)
	a.trace.Push(a.chain.FinalPoint(a.origin.X, a.origin.Y, a.scale))
	res.Advanced = true
	return res
}

func (a *Animator) wrap(t float64) float64 {
	if a.opts.WrapMode == WrapZero {
		return 0
	}
	return math.Mod(t, fourier.Period)
}

// SetProjection sets the origin and scale used for tracing. Points
// already traced were placed with the old projection, so the trace is
// cleared when either changes.
func (a *Animator) SetProjection(origin fourier.Point, scale float64) {
	if origin == a.origin && scale == a.scale {
		return
	}
	a.origin = origin
	a.scale = scale
	a.trace.Clear()
}

// SetTermCount clamps n into the configured bounds, regenerates the
// series and resets time. It returns the count actually applied.
func (a *Animator) SetTermCount(n int) int {
	n = clampInt(n, a.opts.MinTerms, a.opts.MaxTerms)
	if n == a.chain.Terms() {
		return n
	}
	a.regenerate(a.chain.Family(), n)
	return a.chain.Terms()
}

// StepTerms moves the term count by delta.
func (a *Animator) StepTerms(delta int) int {
	return a.SetTermCount(a.chain.Terms() + delta)
}

// SetFamily switches waveform at the current term count and resets time.
func (a *Animator) SetFamily(f fourier.Family) {
	if f == a.chain.Family() {
		return
	}
	a.regenerate(f, a.chain.Terms())
}

// CycleFamily switches to the next family.
func (a *Animator) CycleFamily() fourier.Family {
	a.SetFamily(a.chain.Family().Next())
	return a.chain.Family()
}

func (a *Animator) regenerate(f fourier.Family, n int) {
	if err := a.chain.Regenerate(f, n); err != nil {
		// n is clamped to at least 1 above, so this is a bounds bug.
		a.log.Error("regenerating series", zap.Error(err), zap.Int("terms", n))
		return
	}
	a.rev++
	a.log.Debug("series regenerated", zap.Stringer("family", f), zap.Int("terms", n))
	a.Reset()
}

// SetSpeed clamps v into the configured bounds and returns it.
func (a *Animator) SetSpeed(v int) int {
	a.speed = clampInt(v, a.opts.MinSpeed, a.opts.MaxSpeed)
	return a.speed
}

// StepSpeed moves the speed by delta.
func (a *Animator) StepSpeed(delta int) int {
	return a.SetSpeed(a.speed + delta)
}

// TogglePause flips the play state and returns the new one.
func (a *Animator) TogglePause() PlayState {
	a.state = a.state.Toggle()
	return a.state
}

// Reset returns time to 0 and clears the trace. The play state is left
// as it was.
func (a *Animator) Reset() {
	a.chain.Advance(0)
	a.trace.Clear()
	a.periods = 0
}

func (a *Animator) State() PlayState       { return a.state }
func (a *Animator) Speed() int             { return a.speed }
func (a *Animator) Family() fourier.Family { return a.chain.Family() }
func (a *Animator) Terms() int             { return a.chain.Terms() }
func (a *Animator) Time() float64          { return a.chain.Time() }

// TermBounds returns the configured [min, max] term counts.
func (a *Animator) TermBounds() (int, int) { return a.opts.MinTerms, a.opts.MaxTerms }

// SpeedBounds returns the configured [min, max] speeds.
func (a *Animator) SpeedBounds() (int, int) { return a.opts.MinSpeed, a.opts.MaxSpeed }

// Revision increases every time the coefficient set is regenerated.
func (a *Animator) Revision() int { return a.rev }

// Epicycles returns a copy of the current coefficient set.
func (a *Animator) Epicycles() []fourier.Epicycle { return a.chain.Epicycles() }

// ValueAt evaluates the current partial sum at t.
func (a *Animator) ValueAt(t float64) float64 { return a.chain.ValueAt(t) }

// Reach is the largest possible distance of the final point from the
// origin at scale 1.
func (a *Animator) Reach() float64 { return a.chain.Reach() }

// Snapshot is a read-only view of one tick for rendering.
type Snapshot struct {
	Family        fourier.Family
	Terms         int
	Time          float64
	Speed         int
	State         PlayState
	Periods       int
	Epicycles     []fourier.Epicycle
	Points        []fourier.Point
	Final         fourier.Point
	Trace         []fourier.Point
	TraceLen      int
	TraceCap      int
	Approximation float64
	TrueValue     float64
	Error         float64
	Scale         float64
}

// Snapshot captures the current state. Slices are copies.
func (a *Animator) Snapshot() Snapshot {
	points := a.chain.Project(a.origin.X, a.origin.Y, a.scale)
	return Snapshot{
		Family:        a.chain.Family(),
		Terms:         a.chain.Terms(),
		Time:          a.chain.Time(),
		Speed:         a.speed,
		State:         a.state,
		Periods:       a.periods,
		Epicycles:     a.chain.Epicycles(),
		Points:        points,
		Final:         points[len(points)-1],
		Trace:         a.trace.Contents(),
		TraceLen:      a.trace.Len(),
		TraceCap:      a.trace.Cap(),
		Approximation: a.chain.Approximation(),
		TrueValue:     a.chain.TrueValue(),
		Error:         a.chain.Error(),
		Scale:         a.scale,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
