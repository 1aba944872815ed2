package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-dash/internal/core"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	Jump key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame records a key message in the input frame.
// Terminals report no key releases, so a jump key counts both as the
// key-down event and as held for the tick it arrives in; auto-repeat keeps
// it held.
// Returns true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, km.Quit):
		frame.Push(core.ActionQuit)
		return true
	case key.Matches(msg, km.Jump):
		frame.Push(core.ActionJump)
		frame.Hold(core.ActionJump)
	}
	return false
}

// Help returns the one-line controls hint shown under the game.
func (km KeyMap) Help() string {
	j, q := km.Jump.Help(), km.Quit.Help()
	return j.Key + " " + j.Desc + " • " + q.Key + " " + q.Desc
}
