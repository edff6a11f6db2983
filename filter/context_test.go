package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestScopeAccumulates(t *testing.T) {
	ctx := NewContext()

	done := ctx.Scope(TimerFilterLedge)
	time.Sleep(time.Millisecond)
	done()
	first := ctx.AccumulatedTime(TimerFilterLedge)
	assert.GreaterOrEqual(t, first, time.Millisecond)

	done = ctx.Scope(TimerFilterLedge)
	time.Sleep(time.Millisecond)
	done()
	assert.Greater(t, ctx.AccumulatedTime(TimerFilterLedge), first, "scopes accumulate")

	assert.Zero(t, ctx.AccumulatedTime(TimerFilterWalkable), "other labels untouched")

	ctx.ResetTimers()
	assert.Zero(t, ctx.AccumulatedTime(TimerFilterLedge))
}

func TestScopeLogsDuration(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := NewContext(WithLogger(zap.New(core)))

	ctx.Scope(TimerFilterLowObstacles)()

	entries := logs.FilterMessage("scope done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "filter_low_obstacles", entries[0].ContextMap()["scope"])
}

func TestTimerLabelStrings(t *testing.T) {
	assert.Equal(t, "filter_low_obstacles", TimerFilterLowObstacles.String())
	assert.Equal(t, "filter_ledge", TimerFilterLedge.String())
	assert.Equal(t, "filter_walkable", TimerFilterWalkable.String())
}
