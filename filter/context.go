// Package filter refines the coarse walkability tags of a heightfield:
// bridging low obstacles, rejecting ledges and steep transitions, and
// rejecting spans without standing room. Filters mutate area ids in place and
// never touch span geometry.
package filter

import (
	"time"

	"go.uber.org/zap"
)

// TimerLabel identifies a named timed scope within a build.
type TimerLabel int

const (
	TimerFilterLowObstacles TimerLabel = iota
	TimerFilterLedge
	TimerFilterWalkable
	timerCount
)

func (l TimerLabel) String() string {
	switch l {
	case TimerFilterLowObstacles:
		return "filter_low_obstacles"
	case TimerFilterLedge:
		return "filter_ledge"
	case TimerFilterWalkable:
		return "filter_walkable"
	}
	return "unknown"
}

// Context carries the diagnostics state shared by every filter pass:
// per-label accumulated timers and an optional structured logger. Every
// filter entry point requires a non-nil Context; passing nil is a caller
// defect and panics. The Context never influences filter results.
type Context struct {
	log    *zap.Logger
	timers [timerCount]time.Duration
	starts [timerCount]time.Time
}

type ContextOption func(*Context)

// WithLogger routes scope timing logs to the given logger.
func WithLogger(log *zap.Logger) ContextOption {
	return func(c *Context) { c.log = log }
}

// NewContext returns a Context logging to a nop logger unless told otherwise.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartTimer begins the named scope.
func (c *Context) StartTimer(label TimerLabel) {
	c.starts[label] = time.Now()
}

// StopTimer closes the named scope, accumulating and logging its duration.
func (c *Context) StopTimer(label TimerLabel) {
	took := time.Since(c.starts[label])
	c.timers[label] += took
	c.log.Debug("scope done",
		zap.Stringer("scope", label),
		zap.Duration("took", took))
}

// Scope opens a named timed scope and returns the func that closes it, for
// use with defer.
func (c *Context) Scope(label TimerLabel) func() {
	c.StartTimer(label)
	return func() { c.StopTimer(label) }
}

// AccumulatedTime returns the total time spent inside the named scope.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	return c.timers[label]
}

// ResetTimers clears all accumulated scope times.
func (c *Context) ResetTimers() {
	for i := range c.timers {
		c.timers[i] = 0
	}
}

func mustContext(c *Context) {
	if c == nil {
		panic("filter: nil Context")
	}
}
