package dash

import (
	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/core"
)

var playerWalk = [walkFrames]assets.Sprite{assets.SpritePlayerWalk1, assets.SpritePlayerWalk2}

// Player is the runner. Its horizontal position never changes; vertical
// motion is integrated one tick at a time.
type Player struct {
	rect     core.Rect // Collision box, sized from the first walk frame
	velocity int       // Vertical velocity, positive is down
	frame    float64   // Fractional walk animation index
	sprite   assets.Sprite
	audio    Audio
}

// NewPlayer creates a grounded player at the fixed x position.
func NewPlayer(atlas Atlas, audio Audio) *Player {
	w, h := atlas.Size(assets.SpritePlayerWalk1)
	if audio == nil {
		audio = silentAudio{}
	}
	return &Player{
		rect:   core.RectMidBottom(PlayerX, FloorY, w, h),
		sprite: assets.SpritePlayerWalk1,
		audio:  audio,
	}
}

// Grounded reports whether the player's feet are on the floor line.
func (p *Player) Grounded() bool {
	return p.rect.Bottom() >= FloorY
}

// Airborne reports whether the player is above the floor line.
func (p *Player) Airborne() bool {
	return !p.Grounded()
}

// SampleInput launches a jump when the jump control is held and the player
// is on the ground.
func (p *Player) SampleInput(jumpHeld bool) {
	if jumpHeld && p.Grounded() {
		p.velocity = JumpImpulse
		p.audio.Play(assets.SoundJump)
	}
}

// ApplyGravity integrates one tick of vertical motion and clamps to the floor.
func (p *Player) ApplyGravity() {
	p.velocity += Gravity
	p.rect.Y += p.velocity
	if p.rect.Bottom() >= FloorY {
		p.rect.SetBottom(FloorY)
		p.velocity = 0
	}
}

// AdvanceAnimation shows the jump pose in the air and cycles the walk frames
// on the ground.
func (p *Player) AdvanceAnimation() {
	if p.Airborne() {
		p.sprite = assets.SpritePlayerJump
		return
	}
	p.frame = advanceFrame(p.frame)
	p.sprite = playerWalk[int(p.frame)]
}

// Update runs one tick: input, physics, animation.
func (p *Player) Update(jumpHeld bool) {
	p.SampleInput(jumpHeld)
	p.ApplyGravity()
	p.AdvanceAnimation()
}

// Rect returns the collision rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Velocity returns the current vertical velocity.
func (p *Player) Velocity() int {
	return p.velocity
}

// Sprite returns the image to draw this tick.
func (p *Player) Sprite() assets.Sprite {
	return p.sprite
}

// advanceFrame steps a two-frame animation index by AnimationStep, starting
// over at 0 once it passes the last frame.
func advanceFrame(idx float64) float64 {
	idx += AnimationStep
	if idx >= walkFrames {
		idx = 0
	}
	return idx
}
