package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
	"github.com/vovakirdan/alien-dash/internal/games/dash"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// logAudio stands in for sound in the terminal: it records cues in the log.
type logAudio struct {
	logger *log.Logger
}

func (a logAudio) Play(s assets.Sound) {
	a.logger.Debug("sound", "cue", s)
}

func (a logAudio) Loop(s assets.Sound, volume float64) {
	a.logger.Debug("music", "cue", s, "volume", volume)
}

// Model is the Bubble Tea model running the game.
type Model struct {
	game       *dash.Game
	screen     *core.Screen
	clock      core.Clock
	timer      *core.IntervalTimer
	keys       KeyMap
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	termW      int
	termH      int
	quitting   bool
}

// NewModel creates a model around a game that has not been reset yet.
func NewModel(game *dash.Game, clock core.Clock, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(Cols, Rows),
		clock:      clock,
		timer:      core.NewIntervalTimer(dash.SpawnInterval, core.ActionSpawnTick),
		keys:       DefaultKeyMap(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		termW:      Cols,
		termH:      Rows + 1,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.timer.Poll(m.clock.Millis(), &m.inputFrame)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			// Quit is handled by the game on this same message.
			return m.step()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		m.timer.Poll(m.clock.Millis(), &m.inputFrame)
		model, cmd := m.step()
		if cmd != nil {
			return model, cmd
		}
		return model, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// step runs one simulation tick on the accumulated input.
func (m Model) step() (Model, tea.Cmd) {
	res := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// TooSmall reports whether the terminal cannot show the whole viewport.
func (m Model) TooSmall() bool {
	return m.termW < Cols || m.termH < Rows+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.TooSmall() {
		return helpStyle.Render("Terminal too small: need 80x21. " + m.keys.Help())
	}

	m.game.Render(cellRenderer{screen: m.screen})
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.keys.Help())
}
