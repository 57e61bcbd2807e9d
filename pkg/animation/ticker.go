// Package animation provides the frame-driven timing primitives behind
// the LED effects and widget motion.
//
// # Core Components
//
//   - [AnimationController]: an explicitly advanced value in [0, 1] with a
//     duration, an easing curve and an optional repeat with a hold gap.
//
//   - [FrameScheduler]: the host's frame loop. Each Frame reads the [Clock],
//     computes the delta since the previous frame and steps every active
//     [Ticker] with it.
//
//   - [Tween]: interpolates begin and end values of any type.
//
// # Basic Usage
//
//	sched := animation.NewFrameScheduler()
//	ctrl := animation.NewAnimationController(220 * time.Millisecond)
//	ctrl.Curve = animation.Triangle
//	ctrl.Repeat(16 * time.Millisecond)
//	ticker := sched.Add(func(dt time.Duration) { ctrl.Advance(dt) })
//
//	// once per vsync
//	sched.Frame()
//	if !sched.HasActiveTickers() {
//	    // stop requesting frames
//	}
//	ticker.Stop()
package animation

import (
	"sync"
	"time"

	"github.com/cgsoftware/neoui/pkg/errors"
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the time since the previous frame. Tickers are
// created by [FrameScheduler.Add] and stepped by [FrameScheduler.Frame].
type Ticker struct {
	callback func(dt time.Duration)
	sched    *FrameScheduler
	isActive bool
	start    time.Time
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	s := t.sched
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	s.tickers = append(s.tickers, t)
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	s := t.sched
	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.isActive {
		return
	}
	t.isActive = false
	for i, other := range s.tickers {
		if other == t {
			s.tickers = append(s.tickers[:i], s.tickers[i+1:]...)
			break
		}
	}
	if len(s.tickers) == 0 {
		s.last = time.Time{}
	}
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// FrameScheduler steps tickers once per frame with the frame delta.
//
// Tickers may be added or stopped from any goroutine; callbacks always
// run on the goroutine calling Frame, in the order the tickers started.
type FrameScheduler struct {
	mu      sync.Mutex
	tickers []*Ticker
	last    time.Time
}

// NewFrameScheduler creates a scheduler with no tickers.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Add creates and starts a ticker for callback.
func (s *FrameScheduler) Add(callback func(dt time.Duration)) *Ticker {
	t := &Ticker{callback: callback, sched: s}
	t.Start()
	return t
}

// Frame advances all active tickers by the time since the previous
// frame. The first frame after the scheduler was idle has a zero delta.
// A panicking ticker is reported to the error handler and stopped; the
// remaining tickers still run.
func (s *FrameScheduler) Frame() {
	s.mu.Lock()
	if len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	now := Now()
	var dt time.Duration
	if !s.last.IsZero() {
		dt = max(now.Sub(s.last), 0)
	}
	s.last = now
	// Copy so callbacks can stop tickers without holding the lock.
	tickers := append([]*Ticker(nil), s.tickers...)
	s.mu.Unlock()

	for _, t := range tickers {
		if t.IsActive() && t.callback != nil {
			s.step(t, dt)
		}
	}
}

func (s *FrameScheduler) step(t *Ticker, dt time.Duration) {
	defer errors.RecoverWithCallback("animation.FrameScheduler", func(any) {
		t.Stop()
	})
	t.callback(dt)
}

// HasActiveTickers reports whether another frame is needed.
func (s *FrameScheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}
