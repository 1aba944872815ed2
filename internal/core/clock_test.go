package core

import (
	"testing"
	"time"
)

func TestIntervalTimerFiresOnCadence(t *testing.T) {
	clock := &ManualClock{}
	timer := NewIntervalTimer(1500*time.Millisecond, ActionSpawnTick)
	frame := NewInputFrame()

	// First poll arms the timer at t=0.
	if n := timer.Poll(clock.Millis(), &frame); n != 0 {
		t.Fatalf("arming poll fired %d events", n)
	}

	fired := 0
	for tick := 0; tick < 4500/10; tick++ {
		clock.Advance(10)
		fired += timer.Poll(clock.Millis(), &frame)
	}

	if fired != 3 {
		t.Errorf("after 4.5s expected 3 firings, got %d", fired)
	}
	if len(frame.Events) != 3 {
		t.Errorf("expected 3 queued events, got %d", len(frame.Events))
	}
	for _, e := range frame.Events {
		if e != ActionSpawnTick {
			t.Errorf("unexpected event %s", e)
		}
	}
}

func TestIntervalTimerCatchesUp(t *testing.T) {
	timer := NewIntervalTimer(1500*time.Millisecond, ActionSpawnTick)
	frame := NewInputFrame()

	timer.Poll(0, &frame)
	if n := timer.Poll(4600, &frame); n != 3 {
		t.Errorf("a stalled loop should deliver every missed firing, got %d", n)
	}
}

func TestIntervalTimerDisabled(t *testing.T) {
	timer := NewIntervalTimer(0, ActionSpawnTick)
	frame := NewInputFrame()

	timer.Poll(0, &frame)
	if n := timer.Poll(100000, &frame); n != 0 {
		t.Errorf("zero interval should never fire, got %d", n)
	}
}

func TestSystemClockIsMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Millis()
	b := c.Millis()
	if b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}
