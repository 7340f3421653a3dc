// Package clock provides the pause-aware game stopwatch and the time
// source it reads, so game logic never touches the system clock
// directly and tests can drive time by hand.
package clock

import "time"

// Source provides the current time.
type Source interface {
	Now() time.Time
}

type systemSource struct{}

func (systemSource) Now() time.Time { return time.Now() }

// System returns a Source backed by the system clock.
func System() Source { return systemSource{} }

// Manual is a Source that only moves when told to. Tests use it to
// step through timing scenarios deterministically.
type Manual struct {
	now time.Time
}

// NewManual returns a Manual source positioned at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time { return m.now }

// Set jumps the source to an absolute time.
func (m *Manual) Set(t time.Time) { m.now = t }

// Advance moves the source forward by d.
func (m *Manual) Advance(d time.Duration) { m.now = m.now.Add(d) }

// GameClock is a stopwatch that accumulates time only while running.
// It is the single authority for in-game elapsed time: the HUD
// stopwatch and the offer schedule both read it, so pausing the game
// also freezes offer timing.
type GameClock struct {
	src                Source
	elapsedBeforePause time.Duration
	runningSince       time.Time // zero while not running
}

// NewGameClock returns a stopped clock at zero elapsed time.
func NewGameClock(src Source) *GameClock {
	return &GameClock{src: src}
}

// Start begins accumulating time. Starting a running clock is a no-op.
func (c *GameClock) Start() {
	if c.runningSince.IsZero() {
		c.runningSince = c.src.Now()
	}
}

// Pause folds the running span into the accumulated total. Pausing a
// stopped clock is a no-op.
func (c *GameClock) Pause() {
	if !c.runningSince.IsZero() {
		c.elapsedBeforePause += c.src.Now().Sub(c.runningSince)
		c.runningSince = time.Time{}
	}
}

// Elapsed returns the accumulated game time, running or not.
func (c *GameClock) Elapsed() time.Duration {
	if c.runningSince.IsZero() {
		return c.elapsedBeforePause
	}
	return c.elapsedBeforePause + c.src.Now().Sub(c.runningSince)
}

// Running reports whether the clock is accumulating time.
func (c *GameClock) Running() bool {
	return !c.runningSince.IsZero()
}

// Reset stops the clock and discards the accumulated time.
func (c *GameClock) Reset() {
	c.elapsedBeforePause = 0
	c.runningSince = time.Time{}
}
