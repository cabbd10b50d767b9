package core

import "time"

// MaxFrameDelta is the longest gap between frames that is still simulated.
// Longer gaps (a suspended terminal, a stopped process) become a zero-length tick.
const MaxFrameDelta = time.Second

// DefaultRepeatWindow is how long a key must stay quiet before another press of it counts.
// Terminal auto-repeat fires well inside this window while a key is held.
const DefaultRepeatWindow = 150 * time.Millisecond

// FrameClock measures wall-clock time between ticks.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick returns the seconds elapsed since the previous call.
// The first call returns 0, as does any gap longer than MaxFrameDelta.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now

	if elapsed > MaxFrameDelta || elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}

// Reset forgets the previous tick so the next Tick returns 0.
func (c *FrameClock) Reset() {
	c.started = false
}

// RepeatFilter drops auto-repeated key events so that holding a key
// registers only its initial press.
type RepeatFilter struct {
	window time.Duration
	last   map[Action]time.Time
}

// NewRepeatFilter creates a filter with the given quiet window.
func NewRepeatFilter(window time.Duration) *RepeatFilter {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &RepeatFilter{
		window: window,
		last:   make(map[Action]time.Time),
	}
}

// Accept reports whether an event for action at time now is a fresh press.
// Every event, accepted or not, refreshes the window for that action.
func (f *RepeatFilter) Accept(action Action, now time.Time) bool {
	prev, seen := f.last[action]
	f.last[action] = now
	if !seen {
		return true
	}
	return now.Sub(prev) > f.window
}
