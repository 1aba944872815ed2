// Package dash implements Alien Dash, a side-scrolling runner: the player
// jumps over flies and slimes, and the score is the number of whole seconds
// survived.
package dash

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// Fixed gameplay constants, in logical pixels and ticks.
const (
	ScreenW = 800
	ScreenH = 400
	FloorY  = 300 // Floor line: no bottom edge goes below it
	PlayerX = 80  // Centre x of the player

	JumpImpulse = -20 // Velocity set by a jump
	Gravity     = 1   // Velocity added each tick

	AnimationStep = 0.1 // Animation index advance per tick
	walkFrames    = 2

	ObstacleSpeed = 5    // Pixels moved left per tick
	DespawnX      = -100 // Obstacles at or left of this x are removed
	SpawnMinX     = 900
	SpawnMaxX     = 1100
	FlyY          = 195 // Bottom edge of a fly
	SlimeY        = 300 // Bottom edge of a slime

	SpawnInterval = 1500 * time.Millisecond
	TickRate      = 60
)

// Phase is the top-level game state. The intro screen doubles as the
// game-over screen once a run has ended.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseActive
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "intro"
}

// Deps are the collaborators the game calls into.
type Deps struct {
	Atlas       Atlas
	Audio       Audio
	Clock       core.Clock
	Logger      *log.Logger
	MusicVolume float64
}

// Game holds all mutable state of one process. It is driven by a backend
// that calls Step once per tick and Render once per frame.
type Game struct {
	deps      Deps
	runtime   core.RuntimeConfig
	phase     Phase
	player    *Player
	obstacles *ObstacleSet
	spawner   *Spawner
	startSec  int64 // Clock second at which the current run began
	score     int
	runs      int
}

// New creates a game. Missing collaborators are replaced by the embedded art
// sizes, silence, the system clock and a discarding logger.
func New(deps Deps) *Game {
	if deps.Atlas == nil {
		deps.Atlas = assets.NativeSizes{}
	}
	if deps.Audio == nil {
		deps.Audio = silentAudio{}
	}
	if deps.Clock == nil {
		deps.Clock = core.NewSystemClock()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Game{deps: deps}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "alien-dash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Dash"
}

// Reset initializes the game at process start: intro screen, no obstacles,
// a fresh player and the background music.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = PhaseIntro
	g.player = NewPlayer(g.deps.Atlas, g.deps.Audio)
	g.obstacles = NewObstacleSet()
	g.spawner = NewSpawner(runtime.Seed)
	g.startSec = 0
	g.score = 0
	g.runs = 0

	g.deps.Audio.Loop(assets.SoundMusic, g.deps.MusicVolume)
}

// Step processes this tick's events in arrival order, then advances the
// world when a run is active.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Events {
		switch ev {
		case core.ActionQuit:
			return core.StepResult{State: g.State(), Quit: true}
		case core.ActionSpawnTick:
			if g.phase == PhaseActive {
				g.spawn()
			}
		case core.ActionJump:
			if g.phase == PhaseIntro {
				g.startRun()
			}
		}
	}

	if g.phase != PhaseActive {
		return core.StepResult{State: g.State()}
	}

	g.score = int(g.nowSec() - g.startSec)
	g.player.Update(in.IsHeld(core.ActionJump))
	g.obstacles.Update()

	if g.obstacles.Collides(g.player.Rect()) {
		g.endRun()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) nowSec() int64 {
	return g.deps.Clock.Millis() / 1000
}

func (g *Game) startRun() {
	g.phase = PhaseActive
	g.startSec = g.nowSec()
	g.score = 0
	g.runs++
	g.deps.Logger.Info("run started", "run", g.runs, "at", g.startSec)
}

func (g *Game) spawn() {
	o := g.spawner.Spawn(g.deps.Atlas)
	g.obstacles.Add(o)
	g.deps.Logger.Debug("obstacle spawned", "kind", o.Kind(), "x", o.Rect().X, "live", g.obstacles.Len())
}

// endRun wipes every obstacle, not just the one that was hit.
func (g *Game) endRun() {
	g.obstacles.Clear()
	g.deps.Audio.Play(assets.SoundHit)
	g.deps.Audio.Play(assets.SoundDeath)
	g.phase = PhaseIntro
	g.deps.Logger.Info("run ended", "run", g.runs, "score", g.score)
}

// Phase returns the current top-level state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the live obstacle set.
func (g *Game) Obstacles() *ObstacleSet {
	return g.obstacles
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	n := 0
	if g.obstacles != nil {
		n = g.obstacles.Len()
	}
	return core.GameState{
		Score:     g.score,
		Active:    g.phase == PhaseActive,
		Obstacles: n,
		Runs:      g.runs,
	}
}

// Render draws the current frame.
func (g *Game) Render(r Renderer) {
	if g.phase == PhaseActive {
		g.renderActive(r)
		return
	}
	g.renderIntro(r)
}

func (g *Game) renderActive(r Renderer) {
	g.drawAt(r, assets.SpriteSky, 0, 0)
	g.drawAt(r, assets.SpriteGround, 0, FloorY)
	r.DrawText(fmt.Sprintf("Score: %d", g.score), core.ColorScoreText, ScreenW/2, 50)

	pr := g.player.Rect()
	g.drawAt(r, g.player.Sprite(), pr.X, pr.Y)
	for _, o := range g.obstacles.All() {
		or := o.Rect()
		g.drawAt(r, o.Sprite(), or.X, or.Y)
	}
}

func (g *Game) renderIntro(r Renderer) {
	r.Fill(core.ColorIntroBG)

	w, h := g.deps.Atlas.Size(assets.SpritePlayerStand)
	r.DrawSprite(assets.SpritePlayerStand, core.RectCenter(ScreenW/2, 200, w*2, h*2))

	r.DrawText("Alien Dash", core.ColorBlue, ScreenW/2, 80)
	if g.score == 0 {
		r.DrawText("Press Space to run", core.ColorBlue, ScreenW/2, 330)
		return
	}
	r.DrawText(fmt.Sprintf("Your Score: %d", g.score), core.ColorBlue, ScreenW/2, 330)
	r.DrawText("(Press Space to run again)", core.ColorBlue, ScreenW/2, 370)
}

// drawAt draws s at its native size with its top-left corner at (x, y).
func (g *Game) drawAt(r Renderer, s assets.Sprite, x, y int) {
	w, h := g.deps.Atlas.Size(s)
	r.DrawSprite(s, core.NewRect(x, y, w, h))
}
