package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"github.com/vovakirdan/alien-dash/internal/core"
	"github.com/vovakirdan/alien-dash/internal/games/dash"
)

// keys is the keyboard state sampled for one tick.
type keys struct {
	jumpPressed bool // Space went down this tick
	jumpHeld    bool // Space is down
	closing     bool // The window close button was pressed
}

// collectInput builds the tick's input frame: timer events first, then the
// key-down, then the quit request.
func collectInput(timer *core.IntervalTimer, now int64, k keys) core.InputFrame {
	in := core.NewInputFrame()
	timer.Poll(now, &in)
	if k.jumpPressed {
		in.Push(core.ActionJump)
	}
	if k.jumpHeld {
		in.Hold(core.ActionJump)
	}
	if k.closing {
		in.Push(core.ActionQuit)
	}
	return in
}

// ebitenGame adapts dash.Game to ebiten's loop.
type ebitenGame struct {
	game   *dash.Game
	clock  core.Clock
	timer  *core.IntervalTimer
	images *Images
	face   font.Face
}

func (g *ebitenGame) Update() error {
	in := collectInput(g.timer, g.clock.Millis(), keys{
		jumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		jumpHeld:    ebiten.IsKeyPressed(ebiten.KeySpace),
		closing:     ebiten.IsWindowBeingClosed(),
	})
	if res := g.game.Step(in); res.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.game.Render(renderer{dst: screen, images: g.images, face: g.face})
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return dash.ScreenW, dash.ScreenH
}
