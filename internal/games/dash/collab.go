package dash

import (
	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// Atlas reports the pixel size of loaded sprites. Entity rectangles take the
// size of their first frame.
type Atlas interface {
	Size(s assets.Sprite) (w, h int)
}

// Renderer draws one frame. Coordinates are logical pixels in the 800x400
// viewport.
type Renderer interface {
	// Fill paints the whole viewport.
	Fill(c core.Color)
	// DrawSprite draws s stretched to dst.
	DrawSprite(s assets.Sprite, dst core.Rect)
	// DrawText draws text centred on (cx, cy) and returns its bounds.
	DrawText(text string, c core.Color, cx, cy int) core.Rect
}

// Audio plays sound cues by logical name.
type Audio interface {
	Play(s assets.Sound)
	Loop(s assets.Sound, volume float64)
}

// silentAudio is used when no audio backend is supplied.
type silentAudio struct{}

func (silentAudio) Play(assets.Sound)          {}
func (silentAudio) Loop(assets.Sound, float64) {}
