package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is AnimationForward or AnimationReverse.
// When stopped, status is AnimationDismissed (at 0) or AnimationCompleted (at 1).
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound (0.0).
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound (1.0).
	AnimationForward
	// AnimationReverse means the animation is playing toward the lower bound (0.0).
	AnimationReverse
	// AnimationCompleted means the animation is stopped at the upper bound (1.0).
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController produces a value over time.
//
// The controller does not own a clock. Its owner advances it with
// Advance(dt), usually from a [FrameScheduler] ticker, so the same
// sequence of deltas always yields the same sequence of values.
//
// Value runs from LowerBound (default 0.0) to UpperBound (default 1.0)
// over Duration, shaped by Curve. Repeat keeps cycling with an optional
// hold between cycles.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the length of one run.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	status          AnimationStatus
	running         bool
	repeating       bool
	gap             time.Duration
	elapsed         time.Duration
	from            float64
	target          float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		LowerBound:      0,
		UpperBound:      1,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to the upper bound.
func (c *AnimationController) Forward() {
	c.animateTo(c.UpperBound, AnimationForward)
}

// Reverse animates from the current value to the lower bound.
func (c *AnimationController) Reverse() {
	c.animateTo(c.LowerBound, AnimationReverse)
}

// AnimateTo animates to a specific target value.
func (c *AnimationController) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, AnimationForward)
	} else {
		c.animateTo(target, AnimationReverse)
	}
}

// Repeat runs from the lower to the upper bound forever. After each run
// the end value is held for gap before the next run starts at the lower
// bound again.
func (c *AnimationController) Repeat(gap time.Duration) {
	c.from = c.LowerBound
	c.target = c.UpperBound
	c.elapsed = 0
	c.gap = max(gap, 0)
	c.running = true
	c.repeating = true
	c.setStatus(AnimationForward)
	c.setValue(c.progressValue(0))
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.from = c.Value
	c.target = target
	c.elapsed = 0
	c.gap = 0
	c.running = true
	c.repeating = false
	c.setStatus(direction)
}

// Advance moves the animation forward by dt and reports whether it is
// still running afterwards. Stopped controllers ignore the call.
func (c *AnimationController) Advance(dt time.Duration) bool {
	if !c.running {
		return false
	}
	if dt > 0 {
		c.elapsed += dt
	}
	if c.Duration <= 0 {
		c.setValue(c.progressValue(1))
		c.finish()
		return false
	}

	if c.repeating {
		cycle := c.Duration + c.gap
		pos := c.elapsed % cycle
		c.elapsed = pos
		progress := 1.0
		if pos < c.Duration {
			progress = float64(pos) / float64(c.Duration)
		}
		c.setValue(c.progressValue(progress))
		return true
	}

	progress := float64(c.elapsed) / float64(c.Duration)
	if progress >= 1 {
		progress = 1
	}
	c.setValue(c.progressValue(progress))
	if progress >= 1 {
		c.finish()
		return false
	}
	return true
}

func (c *AnimationController) progressValue(progress float64) float64 {
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	return c.from + (c.target-c.from)*eased
}

func (c *AnimationController) finish() {
	c.running = false
	c.repeating = false
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the animation and sets the value to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.elapsed = 0
	c.setStatus(AnimationDismissed)
	c.setValue(c.LowerBound)
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	c.running = false
	c.repeating = false
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.running
}

// IsRepeating reports whether the controller was started with Repeat
// and has not been stopped.
func (c *AnimationController) IsRepeating() bool {
	return c.repeating
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setValue(v float64) {
	if v == c.Value {
		return
	}
	c.Value = v
	for _, listener := range c.listeners {
		listener()
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
