package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// Logical pixels covered by one terminal cell.
const (
	CellW = 10
	CellH = 20
)

// Grid size of the full viewport.
const (
	Cols = 800 / CellW
	Rows = 400 / CellH
)

var (
	colorSky       = core.RGB(135, 206, 235)
	colorGround    = core.RGB(139, 94, 60)
	colorGrass     = core.RGB(86, 160, 60)
	colorPlayer    = core.RGB(80, 200, 120)
	colorFly       = core.RGB(40, 40, 40)
	colorSlime     = core.RGB(200, 60, 160)
	colorSkyShadow = core.RGB(120, 190, 220)
)

// glyph is how a sprite appears in the grid. Fill sprites paint whole cells;
// the others draw a rune over the existing background.
type glyph struct {
	r    rune
	fg   core.Color
	bg   core.Color
	fill bool
}

var glyphs = map[assets.Sprite]glyph{
	assets.SpritePlayerWalk1: {r: '▛', fg: colorPlayer},
	assets.SpritePlayerWalk2: {r: '▜', fg: colorPlayer},
	assets.SpritePlayerJump:  {r: '▲', fg: colorPlayer},
	assets.SpritePlayerStand: {r: '█', fg: colorPlayer},
	assets.SpriteFly1:        {r: '╳', fg: colorFly},
	assets.SpriteFly2:        {r: '┼', fg: colorFly},
	assets.SpriteSlime1:      {r: '▄', fg: colorSlime},
	assets.SpriteSlime2:      {r: '▃', fg: colorSlime},
	assets.SpriteSky:         {r: ' ', fg: colorSkyShadow, bg: colorSky, fill: true},
	assets.SpriteGround:      {r: '░', fg: colorGrass, bg: colorGround, fill: true},
}

// cellRenderer draws the game into a character grid, mapping logical
// pixels to cells.
type cellRenderer struct {
	screen *core.Screen
}

// Fill paints every cell's background.
func (r cellRenderer) Fill(c core.Color) {
	r.screen.Fill(core.Cell{Rune: ' ', FG: core.ColorWhite, BG: c})
}

// DrawSprite covers every cell the destination rectangle touches.
func (r cellRenderer) DrawSprite(s assets.Sprite, dst core.Rect) {
	g, ok := glyphs[s]
	if !ok {
		return
	}
	area := dst.Scale(CellW, CellH)
	if g.fill {
		r.screen.DrawRect(area, core.Cell{Rune: g.r, FG: g.fg, BG: g.bg})
		if s == assets.SpriteGround {
			r.screen.DrawHLine(area.X, area.Y, area.W, core.Cell{Rune: '▀', FG: colorGrass, BG: g.bg})
		}
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			r.screen.SetRune(x, y, g.r, g.fg)
		}
	}
}

// DrawText writes text on one row, centred on the cell containing (cx, cy).
func (r cellRenderer) DrawText(text string, c core.Color, cx, cy int) core.Rect {
	n := len([]rune(text))
	col := cx/CellW - n/2
	row := cy / CellH
	r.screen.DrawText(col, row, text, c)
	return core.NewRect(col*CellW, row*CellH, n*CellW, CellH)
}

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

var styleCache = map[styleKey]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if s, ok := styleCache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	styleCache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
