package core

// Action represents a semantic input event, abstracted from physical keys
// and platform timers.
type Action int

const (
	ActionNone      Action = iota
	ActionJump             // Space, Up, W - jump / start a run
	ActionSpawnTick        // Obstacle timer fired (not bound to a key)
	ActionQuit             // Window closed, Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSpawnTick:
		return "SpawnTick"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for a single simulation tick.
//
// Events holds discrete events (key-down, timer, quit) in arrival order; the
// game processes them front to back. Held records controls that are being
// held down during the tick, independent of whether a key-down arrived.
type InputFrame struct {
	Events []Action
	Held   map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// Push appends a discrete event to the queue.
func (f *InputFrame) Push(a Action) {
	f.Events = append(f.Events, a)
}

// Hold marks a control as held down for this tick.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if at least one event of the given kind was queued.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e == a {
			return true
		}
	}
	return false
}

// IsHeld returns true if the control was held during this tick.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets the frame for the next tick, keeping allocated storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	for k := range f.Held {
		delete(f.Held, k)
	}
}
