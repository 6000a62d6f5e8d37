package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerRecordsDurations(t *testing.T) {
	tracker := NewTracker()

	ctx := tracker.StartTiming("scan")
	time.Sleep(time.Millisecond)
	elapsed := tracker.EndTiming(ctx)

	assert.Greater(t, elapsed, time.Duration(0))

	timings := tracker.GetTimings("scan")
	assert.Len(t, timings, 1)
	assert.Equal(t, elapsed, timings[0])
}

func TestTrackerAverage(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 3; i++ {
		ctx := tracker.StartTiming("op")
		tracker.EndTiming(ctx)
	}

	assert.Len(t, tracker.GetTimings("op"), 3)
	assert.GreaterOrEqual(t, tracker.GetAverageTime("op"), time.Duration(0))
	assert.Equal(t, time.Duration(0), tracker.GetAverageTime("unknown"))
}

func TestTrackerDisabled(t *testing.T) {
	tracker := NewTracker()
	tracker.SetEnabled(false)

	ctx := tracker.StartTiming("op")
	assert.Equal(t, time.Duration(0), tracker.EndTiming(ctx))
	assert.Nil(t, tracker.GetTimings("op"))
}

func TestTrackerEndWithoutStart(t *testing.T) {
	tracker := NewTracker()
	assert.Equal(t, time.Duration(0), tracker.EndTiming(context.Background()))
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()

	tracker.EndTiming(tracker.StartTiming("a"))
	tracker.EndTiming(tracker.StartTiming("b"))

	tracker.Reset("a")
	assert.Nil(t, tracker.GetTimings("a"))
	assert.Len(t, tracker.GetTimings("b"), 1)

	tracker.Reset("")
	assert.Nil(t, tracker.GetTimings("b"))
}
