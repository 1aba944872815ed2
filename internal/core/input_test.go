package core

import "testing"

func TestInputFrameKeepsEventOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionSpawnTick)
	f.Push(ActionJump)
	f.Push(ActionQuit)

	expected := []Action{ActionSpawnTick, ActionJump, ActionQuit}
	if len(f.Events) != len(expected) {
		t.Fatalf("Events = %v, expected %v", f.Events, expected)
	}
	for i, a := range expected {
		if f.Events[i] != a {
			t.Errorf("Events[%d] = %s, expected %s", i, f.Events[i], a)
		}
	}
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true")
	}
}

func TestInputFrameHeldIsIndependentOfEvents(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.IsHeld(ActionJump) {
		t.Error("zero frame should hold nothing")
	}

	f.Hold(ActionJump)
	if !f.IsHeld(ActionJump) {
		t.Error("IsHeld(ActionJump) should be true after Hold")
	}
	if f.Has(ActionJump) {
		t.Error("holding a control must not queue a key-down event")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionJump)
	f.Hold(ActionJump)

	f.Clear()

	if len(f.Events) != 0 || f.IsHeld(ActionJump) || f.Has(ActionJump) {
		t.Error("Clear should drop events and held controls")
	}
	f.Push(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("frame should be reusable after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:      "None",
		ActionJump:      "Jump",
		ActionSpawnTick: "SpawnTick",
		ActionQuit:      "Quit",
		Action(99):      "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), want)
		}
	}
}
