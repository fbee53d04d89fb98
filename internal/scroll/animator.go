package scroll

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"

	"github.com/zhubert/chatkit/internal/timers"
)

// Spring parameters for smooth scrolling: critically damped, settling in
// roughly a quarter second.
const (
	animationFPS     = 60
	angularFrequency = 12.0
	dampingRatio     = 1.0
	settleDistance   = 0.5
	settleVelocity   = 0.5
)

// Animator moves a viewport offset toward a target with a spring, one frame
// per tick.
type Animator struct {
	spring   harmonica.Spring
	slot     *timers.Slot
	frame    time.Duration
	pos      float64
	velocity float64
	target   float64
	running  bool
	closed   bool
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(animationFPS), angularFrequency, dampingRatio),
		slot:   timers.NewSlot(),
		frame:  time.Second / animationFPS,
	}
}

// Start animates from the current offset to target. Calling it while an
// animation runs retargets the running animation.
func (a *Animator) Start(from, target int) tea.Cmd {
	if a.closed {
		return nil
	}
	if !a.running {
		a.pos = float64(from)
		a.velocity = 0
	}
	a.target = float64(target)
	a.running = true
	return a.slot.Schedule(a.frame)
}

// Stop abandons the animation, e.g. when the user scrolls.
func (a *Animator) Stop() {
	a.running = false
	a.slot.Cancel()
}

// Close stops the animation for good.
func (a *Animator) Close() {
	a.running = false
	a.closed = true
	a.slot.Close()
}

// Running reports whether an animation is in progress.
func (a *Animator) Running() bool {
	return a.running
}

// Owns reports whether msg belongs to this animator.
func (a *Animator) Owns(msg timers.FiredMsg) bool {
	return a.slot.Owns(msg)
}

// Step advances one frame for a tick delivered to the animator. It returns
// the offset to apply, whether the tick was live, and the next frame's tick.
func (a *Animator) Step(msg timers.FiredMsg) (offset int, ok bool, next tea.Cmd) {
	if !a.slot.Fired(msg) || !a.running {
		return 0, false, nil
	}

	a.pos, a.velocity = a.spring.Update(a.pos, a.velocity, a.target)
	if math.Abs(a.target-a.pos) < settleDistance && math.Abs(a.velocity) < settleVelocity {
		a.pos = a.target
		a.velocity = 0
		a.running = false
		return int(a.target), true, nil
	}
	return int(math.Round(a.pos)), true, a.slot.Schedule(a.frame)
}

// Current returns the tick message the running animation is waiting for.
func (a *Animator) Current() timers.FiredMsg {
	return a.slot.Current()
}
