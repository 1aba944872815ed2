package window

import (
	"image"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// fontSize is the point size of all in-game text, at 72 DPI.
const fontSize = 28

// NewFace parses the bundled Go Regular font.
func NewFace() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: fontSize}), nil
}

// renderer draws one frame onto an ebiten image.
type renderer struct {
	dst    *ebiten.Image
	images *Images
	face   font.Face
}

// Fill paints the whole viewport.
func (r renderer) Fill(c core.Color) {
	r.dst.Fill(c)
}

// DrawSprite draws s scaled to fill dst.
func (r renderer) DrawSprite(s assets.Sprite, dst core.Rect) {
	img := r.images.Image(s)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(spriteScale(img.Bounds(), dst))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	r.dst.DrawImage(img, op)
}

// DrawText draws text centred on (cx, cy).
func (r renderer) DrawText(s string, c core.Color, cx, cy int) core.Rect {
	bounds := text.BoundString(r.face, s) //nolint:staticcheck // text/v2 has no freetype face adapter
	x, y := centerText(bounds, cx, cy)
	text.Draw(r.dst, s, r.face, x, y, c) //nolint:staticcheck
	return core.NewRect(x+bounds.Min.X, y+bounds.Min.Y, bounds.Dx(), bounds.Dy())
}

// spriteScale returns the factors that stretch src onto dst.
func spriteScale(src image.Rectangle, dst core.Rect) (sx, sy float64) {
	if src.Dx() == 0 || src.Dy() == 0 {
		return 1, 1
	}
	return float64(dst.W) / float64(src.Dx()), float64(dst.H) / float64(src.Dy())
}

// centerText returns the dot position that centres text with the given
// bounds (relative to the dot) on (cx, cy).
func centerText(bounds image.Rectangle, cx, cy int) (x, y int) {
	x = cx - bounds.Min.X - bounds.Dx()/2
	y = cy - bounds.Min.Y - bounds.Dy()/2
	return x, y
}
