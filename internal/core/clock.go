package core

import "time"

// Clock supplies monotonic milliseconds since the process started.
type Clock interface {
	Millis() int64
}

// SystemClock measures elapsed time from its creation using Go's monotonic
// clock reading.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns the milliseconds elapsed since the clock was created.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a Clock advanced explicitly by the caller.
type ManualClock struct {
	Now int64
}

// Millis returns the current manual time.
func (c *ManualClock) Millis() int64 {
	return c.Now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.Now += ms
}

// IntervalTimer fires an event every Interval milliseconds of clock time,
// starting one interval after its first poll.
type IntervalTimer struct {
	Interval int64
	Event    Action

	next    int64
	started bool
}

// NewIntervalTimer creates a timer that emits ev every interval ms.
func NewIntervalTimer(interval time.Duration, ev Action) *IntervalTimer {
	return &IntervalTimer{
		Interval: interval.Milliseconds(),
		Event:    ev,
	}
}

// Poll appends one event to the frame for every interval that has elapsed by
// now and returns how many fired. The first call arms the timer.
func (t *IntervalTimer) Poll(now int64, frame *InputFrame) int {
	if t.Interval <= 0 {
		return 0
	}
	if !t.started {
		t.started = true
		t.next = now + t.Interval
		return 0
	}

	fired := 0
	for now >= t.next {
		frame.Push(t.Event)
		t.next += t.Interval
		fired++
	}
	return fired
}
