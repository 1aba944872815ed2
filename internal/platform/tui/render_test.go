package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

func TestCellRendererFill(t *testing.T) {
	s := core.NewScreen(Cols, Rows)
	cellRenderer{screen: s}.Fill(core.ColorIntroBG)

	for _, pt := range [][2]int{{0, 0}, {Cols - 1, Rows - 1}, {40, 10}} {
		if c := s.GetCell(pt[0], pt[1]); c.BG != core.ColorIntroBG || c.Rune != ' ' {
			t.Errorf("cell %v = %+v", pt, c)
		}
	}
}

func TestCellRendererSpriteCoversTouchedCells(t *testing.T) {
	s := core.NewScreen(Cols, Rows)
	r := cellRenderer{screen: s}
	r.Fill(colorSky)

	// The player's box: x 47..113, y 208..300.
	r.DrawSprite(assets.SpritePlayerWalk1, core.NewRect(47, 208, 66, 92))

	for y := 10; y < 15; y++ {
		for x := 4; x < 12; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '▛' || c.FG != colorPlayer {
				t.Errorf("cell (%d, %d) = %+v, expected player glyph", x, y, c)
			}
			if c.BG != colorSky {
				t.Errorf("cell (%d, %d) lost its background", x, y)
			}
		}
	}
	if s.Get(3, 12) != ' ' || s.Get(12, 12) != ' ' || s.Get(6, 15) != ' ' {
		t.Error("sprite spilled outside its cells")
	}
}

func TestCellRendererBackgrounds(t *testing.T) {
	s := core.NewScreen(Cols, Rows)
	r := cellRenderer{screen: s}
	r.DrawSprite(assets.SpriteSky, core.NewRect(0, 0, 800, 300))
	r.DrawSprite(assets.SpriteGround, core.NewRect(0, 300, 800, 100))

	if c := s.GetCell(0, 14); c.BG != colorSky {
		t.Errorf("row 14 should be sky, got %+v", c)
	}
	if c := s.GetCell(0, 15); c.BG != colorGround || c.Rune != '▀' {
		t.Errorf("row 15 should be the grass edge, got %+v", c)
	}
	if c := s.GetCell(0, 16); c.Rune != '░' {
		t.Errorf("row 16 should be soil, got %+v", c)
	}
	if c := s.GetCell(Cols-1, Rows-1); c.BG != colorGround {
		t.Errorf("bottom-right should be ground, got %+v", c)
	}
}

func TestCellRendererTextCentred(t *testing.T) {
	s := core.NewScreen(Cols, Rows)
	r := cellRenderer{screen: s}

	bounds := r.DrawText("Score: 12", core.ColorScoreText, 400, 50)

	row := s.Row(2)
	idx := strings.Index(row, "Score: 12")
	if idx != 36 {
		t.Errorf("text starts at column %d, expected 36: %q", idx, row)
	}
	if bounds != core.NewRect(360, 40, 90, 20) {
		t.Errorf("bounds = %+v", bounds)
	}
	if c := s.GetCell(36, 2); c.FG != core.ColorScoreText {
		t.Errorf("text colour = %v", c.FG)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	cellRenderer{screen: s}.Fill(core.ColorIntroBG)
	s.DrawText(1, 0, "Alien", core.ColorBlue)
	s.DrawText(1, 1, "Dash", core.ColorWhite)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d newlines", got)
	}
	for _, want := range []string{"Alien", "Dash"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
