package assets

import (
	"fmt"
	"sort"
)

// Manifest maps logical asset names to paths inside an asset tree.
type Manifest struct {
	Sprites map[string]string `yaml:"sprites"`
	Sounds  map[string]string `yaml:"sounds"`
}

// DefaultManifest returns the paths of the embedded assets.
func DefaultManifest() Manifest {
	return Manifest{
		Sprites: map[string]string{
			SpritePlayerWalk1.String(): "player/walk1.png",
			SpritePlayerWalk2.String(): "player/walk2.png",
			SpritePlayerJump.String():  "player/jump.png",
			SpritePlayerStand.String(): "player/stand.png",
			SpriteFly1.String():        "enemies/fly1.png",
			SpriteFly2.String():        "enemies/fly2.png",
			SpriteSlime1.String():      "enemies/slime1.png",
			SpriteSlime2.String():      "enemies/slime2.png",
			SpriteSky.String():         "backgrounds/desert.png",
			SpriteGround.String():      "backgrounds/ground.png",
		},
		Sounds: map[string]string{
			SoundJump.String():  "audio/jump.wav",
			SoundDeath.String(): "audio/death.wav",
			SoundHit.String():   "audio/hit.wav",
			SoundMusic.String(): "audio/music.wav",
		},
	}
}

// Merge returns m with any entry missing from m filled in from def.
func (m Manifest) Merge(def Manifest) Manifest {
	out := Manifest{
		Sprites: make(map[string]string, len(def.Sprites)),
		Sounds:  make(map[string]string, len(def.Sounds)),
	}
	for k, v := range def.Sprites {
		out.Sprites[k] = v
	}
	for k, v := range def.Sounds {
		out.Sounds[k] = v
	}
	for k, v := range m.Sprites {
		if v != "" {
			out.Sprites[k] = v
		}
	}
	for k, v := range m.Sounds {
		if v != "" {
			out.Sounds[k] = v
		}
	}
	return out
}

// SpritePath returns the path registered for s.
func (m Manifest) SpritePath(s Sprite) (string, error) {
	p, ok := m.Sprites[s.String()]
	if !ok || p == "" {
		return "", fmt.Errorf("assets: no path for sprite %q", s)
	}
	return p, nil
}

// SoundPath returns the path registered for s.
func (m Manifest) SoundPath(s Sound) (string, error) {
	p, ok := m.Sounds[s.String()]
	if !ok || p == "" {
		return "", fmt.Errorf("assets: no path for sound %q", s)
	}
	return p, nil
}

// Unknown lists manifest keys that do not name any sprite or sound, sorted.
func (m Manifest) Unknown() []string {
	known := make(map[string]bool)
	for _, s := range Sprites() {
		known["sprite:"+s.String()] = true
	}
	for _, s := range Sounds() {
		known["sound:"+s.String()] = true
	}

	var out []string
	for k := range m.Sprites {
		if !known["sprite:"+k] {
			out = append(out, "sprites."+k)
		}
	}
	for k := range m.Sounds {
		if !known["sound:"+k] {
			out = append(out, "sounds."+k)
		}
	}
	sort.Strings(out)
	return out
}
