package window

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder for sprite sheets
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-dash/internal/assets"
)

// Images holds one decoded image per sprite id and doubles as the game's
// atlas.
type Images struct {
	images map[assets.Sprite]*ebiten.Image
}

// decodeImages reads every sprite in the manifest from fsys. The first
// failure aborts the load.
func decodeImages(fsys fs.FS, m assets.Manifest) (map[assets.Sprite]image.Image, error) {
	out := make(map[assets.Sprite]image.Image)
	for _, s := range assets.Sprites() {
		p, err := m.SpritePath(s)
		if err != nil {
			return nil, err
		}
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("window: open sprite %s: %w", p, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("window: decode sprite %s: %w", p, err)
		}
		out[s] = img
	}
	return out, nil
}

// LoadImages decodes the manifest's sprites and uploads them as ebiten
// images.
func LoadImages(fsys fs.FS, m assets.Manifest) (*Images, error) {
	decoded, err := decodeImages(fsys, m)
	if err != nil {
		return nil, err
	}
	imgs := &Images{images: make(map[assets.Sprite]*ebiten.Image, len(decoded))}
	for s, img := range decoded {
		imgs.images[s] = ebiten.NewImageFromImage(img)
	}
	return imgs, nil
}

// Image returns the loaded image for s.
func (i *Images) Image(s assets.Sprite) *ebiten.Image {
	return i.images[s]
}

// Size returns the pixel size of the loaded image for s.
func (i *Images) Size(s assets.Sprite) (w, h int) {
	img := i.Image(s)
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
