package gfx

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Host runs a callback once, no earlier than the next display refresh.
type Host interface {
	RequestFrame(f func())
}

// Clock reports time elapsed since a fixed origin.
type Clock interface {
	Elapsed() time.Duration
}

type wallClock struct {
	origin time.Time
}

// NewClock returns a monotonic clock whose origin is now.
func NewClock() Clock {
	return wallClock{origin: time.Now()}
}

func (c wallClock) Elapsed() time.Duration {
	return time.Since(c.origin)
}

// Spin rotates about Axis once per Period. When Secondary is non-zero it
// also rotates about Secondary at SecondaryRatio of the angle; the primary
// rotation is applied on the left.
type Spin struct {
	Period         time.Duration
	Axis           mgl32.Vec3
	Secondary      mgl32.Vec3
	SecondaryRatio float32
}

// TurnSpin turns about Y every six seconds.
var TurnSpin = Spin{
	Period: 6 * time.Second,
	Axis:   mgl32.Vec3{0, 1, 0},
}

// CubeSpin turns about Y every six seconds and tumbles about X at a quarter
// of that rate.
var CubeSpin = Spin{
	Period:         6 * time.Second,
	Axis:           mgl32.Vec3{0, 1, 0},
	Secondary:      mgl32.Vec3{1, 0, 0},
	SecondaryRatio: 0.25,
}

// Valid reports whether the spin has a positive period and a non-zero
// axis. A zero Secondary only disables the second rotation.
func (s Spin) Valid() bool {
	return s.Period > 0 && s.Axis.Len() > 0
}

// Angle is elapsed/Period full turns, in radians. It is not wrapped.
func (s Spin) Angle(elapsed time.Duration) float64 {
	return elapsed.Seconds() / s.Period.Seconds() * 2 * math.Pi
}

// Matrix returns the world rotation for elapsed.
func (s Spin) Matrix(elapsed time.Duration) mgl32.Mat4 {
	a := float32(s.Angle(elapsed))
	m := mgl32.HomogRotate3D(a, s.Axis.Normalize())
	if s.Secondary.Len() == 0 {
		return m
	}
	return m.Mul4(mgl32.HomogRotate3D(a*s.SecondaryRatio, s.Secondary.Normalize()))
}

type AnimatorState int

const (
	Idle AnimatorState = iota
	Running
)

func (s AnimatorState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Frame is everything one animation tick draws.
type Frame struct {
	Transforms *Transforms
	Vertices   *VertexBuffer
	Texture    *Sampler2D // may be nil
	ClearColor [4]float32
}

// DefaultFrameClear is the clear color used between frames.
var DefaultFrameClear = [4]float32{0.75, 0.85, 0.8, 1.0}

// Animator redraws a Frame on every host refresh with the world matrix
// taken from Spin. Once started it keeps requesting ticks; dropping the
// host's callback is the only way to stop it.
type Animator struct {
	ctx   Context
	host  Host
	clock Clock
	spin  Spin
	frame Frame
	log   zerolog.Logger

	state AnimatorState
	ticks uint64
}

func NewAnimator(ctx Context, host Host, clock Clock, spin Spin, frame Frame, log zerolog.Logger) *Animator {
	return &Animator{
		ctx:   ctx,
		host:  host,
		clock: clock,
		spin:  spin,
		frame: frame,
		log:   log,
	}
}

func (a *Animator) State() AnimatorState {
	return a.state
}

// Ticks returns the number of frames drawn so far.
func (a *Animator) Ticks() uint64 {
	return a.ticks
}

// Start schedules the first tick. Starting a running animator does nothing.
func (a *Animator) Start() {
	if a.state == Running {
		return
	}
	a.state = Running
	a.log.Debug().Dur("period", a.spin.Period).Msg("animation started")
	a.host.RequestFrame(a.tick)
}

func (a *Animator) tick() {
	a.Draw(a.clock.Elapsed())
	a.host.RequestFrame(a.tick)
}

// Draw renders the frame as it looks at elapsed without scheduling
// anything.
func (a *Animator) Draw(elapsed time.Duration) {
	f := &a.frame
	f.Transforms.SetWorld(a.spin.Matrix(elapsed))
	DrawFrame(a.ctx, f)
	a.ticks++
}

// DrawFrame clears color and depth and draws f with its current transforms.
func DrawFrame(ctx Context, f *Frame) {
	c := f.ClearColor
	ctx.ClearColor(c[0], c[1], c[2], c[3])
	ctx.Clear(DepthBufferBit | ColorBufferBit)
	if f.Texture != nil {
		f.Texture.Bind(ctx, 0)
	}
	f.Vertices.Draw(ctx)
}
