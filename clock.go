package motion

import "time"

// Clock supplies the absolute time that drives tween playback.
type Clock interface {
	// Now returns the current time in seconds. It must be monotonically
	// non-decreasing.
	Now() float64
	// PauseDuration returns the length in seconds of the most recently
	// completed pause span. [Tween.Resume] shifts the tween's start time
	// by this amount so paused wall-time does not count as elapsed time.
	PauseDuration() float64
}

// pausable is implemented by clocks that track pause spans themselves.
// Manager.PauseAll and Manager.ResumeAll forward to it when available.
type pausable interface {
	Pause()
	Resume()
}

// GameClock is a wall clock measured in seconds from its creation, with
// pause-span tracking. It is the clock a [Manager] installs by default.
type GameClock struct {
	start    time.Time
	pausedAt time.Time
	paused   bool
	pauseDur float64
}

// NewGameClock returns a GameClock starting at time zero.
func NewGameClock() *GameClock {
	return &GameClock{start: time.Now()}
}

// Now returns the seconds elapsed since the clock was created.
func (c *GameClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Pause marks the beginning of a pause span. Pausing an already paused
// clock does nothing.
func (c *GameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = time.Now()
}

// Resume ends the current pause span and records its length.
func (c *GameClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.pauseDur = time.Since(c.pausedAt).Seconds()
}

// PauseDuration returns the length of the most recently completed pause span.
func (c *GameClock) PauseDuration() float64 {
	return c.pauseDur
}

// ManualClock is a test clock advanced by hand, so tween timing can be
// driven deterministically.
type ManualClock struct {
	now      float64
	pausedAt float64
	paused   bool
	pauseDur float64
}

// Now returns the clock's current time.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.now += d
}

// Set jumps the clock to t seconds.
func (c *ManualClock) Set(t float64) {
	c.now = t
}

// Pause marks the beginning of a pause span at the current time.
func (c *ManualClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now
}

// Resume ends the current pause span and records its length.
func (c *ManualClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.pauseDur = c.now - c.pausedAt
}

// PauseDuration returns the length of the most recently completed pause span.
func (c *ManualClock) PauseDuration() float64 {
	return c.pauseDur
}

// SetPauseDuration overrides the recorded pause span, for tests that drive
// Tween.Pause and Tween.Resume directly without pausing the clock.
func (c *ManualClock) SetPauseDuration(d float64) {
	c.pauseDur = d
}
