// Package assets names every image and sound the game uses by logical role,
// maps those roles to files, and embeds a default set of art and audio.
package assets

// Sprite identifies an image by its role in the game.
type Sprite int

const (
	SpritePlayerWalk1 Sprite = iota
	SpritePlayerWalk2
	SpritePlayerJump
	SpritePlayerStand
	SpriteFly1
	SpriteFly2
	SpriteSlime1
	SpriteSlime2
	SpriteSky
	SpriteGround

	spriteCount
)

var spriteNames = [spriteCount]string{
	SpritePlayerWalk1: "player_walk_1",
	SpritePlayerWalk2: "player_walk_2",
	SpritePlayerJump:  "player_jump",
	SpritePlayerStand: "player_stand",
	SpriteFly1:        "fly_1",
	SpriteFly2:        "fly_2",
	SpriteSlime1:      "slime_1",
	SpriteSlime2:      "slime_2",
	SpriteSky:         "sky",
	SpriteGround:      "ground",
}

// String returns the manifest key of the sprite.
func (s Sprite) String() string {
	if s < 0 || s >= spriteCount {
		return "unknown"
	}
	return spriteNames[s]
}

// Sprites returns every sprite id in declaration order.
func Sprites() []Sprite {
	out := make([]Sprite, spriteCount)
	for i := range out {
		out[i] = Sprite(i)
	}
	return out
}

// Sound identifies an audio cue by its role in the game.
type Sound int

const (
	SoundJump Sound = iota
	SoundDeath
	SoundHit
	SoundMusic

	soundCount
)

var soundNames = [soundCount]string{
	SoundJump:  "jump",
	SoundDeath: "death",
	SoundHit:   "hit",
	SoundMusic: "music",
}

// String returns the manifest key of the sound.
func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sounds returns every sound id in declaration order.
func Sounds() []Sound {
	out := make([]Sound, soundCount)
	for i := range out {
		out[i] = Sound(i)
	}
	return out
}
