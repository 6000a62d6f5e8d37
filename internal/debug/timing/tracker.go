package timing

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type timingInfo struct {
	operation string
	startTime time.Time
}

// Tracker records wall-clock durations per operation name. Scanner and
// loader timings feed the debug log.
type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
	}
}

// StartTiming begins measuring an operation. The returned context carries the
// start time and must be passed to EndTiming.
func (tt *Tracker) StartTiming(operation string) context.Context {
	if !tt.enabled {
		return context.Background()
	}

	return context.WithValue(context.Background(), timingKey{}, timingInfo{
		operation: operation,
		startTime: time.Now(),
	})
}

// EndTiming finishes the measurement started with StartTiming and returns
// the elapsed duration.
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	info, ok := ctx.Value(timingKey{}).(timingInfo)
	if !ok {
		return 0
	}

	duration := time.Since(info.startTime)

	tt.mu.Lock()
	tt.timings[info.operation] = append(tt.timings[info.operation], duration)
	tt.mu.Unlock()

	return duration
}

// GetTimings returns a copy of all recorded durations for an operation.
func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// GetAverageTime computes the mean duration for an operation.
func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}
	return total / time.Duration(len(timings))
}

// SetEnabled toggles measurement; a disabled tracker records nothing.
func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

// Reset drops recorded durations for one operation, or all of them when the
// operation is empty.
func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
