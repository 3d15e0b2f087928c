package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mozaorun/assets"
	"golang.org/x/image/colornames"
)

const placeholderSize = 32

// LoadImage loads an image from assets or filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

// ImageOrPlaceholder never fails: a key that cannot be loaded is replaced by
// a flat swatch whose colour is stable for that key.
func ImageOrPlaceholder(key string) *ebiten.Image {
	img, err := LoadImage(key)
	if err == nil {
		return img
	}
	log.Printf("render: %v; using placeholder", err)
	img = ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(PlaceholderColor(key))
	RegisterImage(key, img)
	return img
}

var placeholderPalette = []color.RGBA{
	colornames.Hotpink,
	colornames.Orange,
	colornames.Mediumseagreen,
	colornames.Steelblue,
	colornames.Gold,
	colornames.Slateblue,
	colornames.Tomato,
	colornames.Teal,
}

func PlaceholderColor(key string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return placeholderPalette[h.Sum32()%uint32(len(placeholderPalette))]
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("failed to load image %s", path)
}
