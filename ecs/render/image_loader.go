package render

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bouncers/assets"
	"golang.org/x/image/draw"
)

// LoadSprite loads the image at path from the embedded assets or, failing
// that, the filesystem, scales it to size x size and registers it under key.
func LoadSprite(key, path string, size int) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	src, err := loadFromAssetsOrFS(path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(Scale(src, size))
	RegisterImage(key, img)
	return img, nil
}

func loadFromAssetsOrFS(path string) (image.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open sprite: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return img, nil
}

// Scale resamples src to size x size. Sprites are tiny, so nearest
// neighbour keeps hard pixel edges.
func Scale(src image.Image, size int) *image.RGBA {
	size = max(size, 1)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
