package dash

import (
	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

// recordingAudio remembers every cue in order.
type recordingAudio struct {
	played []assets.Sound
	looped []assets.Sound
	volume float64
}

func (a *recordingAudio) Play(s assets.Sound) {
	a.played = append(a.played, s)
}

func (a *recordingAudio) Loop(s assets.Sound, volume float64) {
	a.looped = append(a.looped, s)
	a.volume = volume
}

func (a *recordingAudio) count(s assets.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type drawCall struct {
	sprite assets.Sprite
	dst    core.Rect
}

type textCall struct {
	text   string
	color  core.Color
	cx, cy int
}

// recordingRenderer captures one frame's draw calls.
type recordingRenderer struct {
	fills   []core.Color
	sprites []drawCall
	texts   []textCall
}

func (r *recordingRenderer) Fill(c core.Color) {
	r.fills = append(r.fills, c)
}

func (r *recordingRenderer) DrawSprite(s assets.Sprite, dst core.Rect) {
	r.sprites = append(r.sprites, drawCall{sprite: s, dst: dst})
}

func (r *recordingRenderer) DrawText(text string, c core.Color, cx, cy int) core.Rect {
	r.texts = append(r.texts, textCall{text: text, color: c, cx: cx, cy: cy})
	return core.RectCenter(cx, cy, len(text)*10, 20)
}

func (r *recordingRenderer) hasText(text string) bool {
	for _, t := range r.texts {
		if t.text == text {
			return true
		}
	}
	return false
}

func jumpPress() core.InputFrame {
	in := core.NewInputFrame()
	in.Push(core.ActionJump)
	return in
}

func jumpHeld() core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(core.ActionJump)
	return in
}

func events(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	return in
}
