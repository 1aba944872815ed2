package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:data
var dataFS embed.FS

// Embedded returns the built-in asset tree rooted at data/.
func Embedded() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// data/ is compiled in; Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}

// Open returns the asset tree to load from: the directory dir when set,
// otherwise the embedded defaults.
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// nativeSizes are the pixel dimensions of the embedded art. Backends that
// do not decode images (the terminal) use them for collision geometry.
var nativeSizes = [spriteCount][2]int{
	SpritePlayerWalk1: {66, 92},
	SpritePlayerWalk2: {66, 92},
	SpritePlayerJump:  {67, 94},
	SpritePlayerStand: {66, 92},
	SpriteFly1:        {72, 36},
	SpriteFly2:        {72, 36},
	SpriteSlime1:      {50, 28},
	SpriteSlime2:      {50, 28},
	SpriteSky:         {800, 300},
	SpriteGround:      {800, 100},
}

// NativeSizes is an atlas backed by the dimensions of the embedded art.
type NativeSizes struct{}

// Size returns the embedded art's width and height for s.
func (NativeSizes) Size(s Sprite) (w, h int) {
	if s < 0 || s >= spriteCount {
		return 0, 0
	}
	return nativeSizes[s][0], nativeSizes[s][1]
}
