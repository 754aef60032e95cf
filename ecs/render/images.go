package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/papercards/assets"
)

// ImageCache uploads embedded images to the GPU once and keeps them by name.
// Failed loads are remembered so a missing background is reported once.
type ImageCache struct {
	images map[string]*ebiten.Image
	failed map[string]error
	decode func(name string) (image.Image, error)
}

func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]error),
		decode: assets.DecodeImage,
	}
}

// Get returns the image for name, loading it on first use.
func (c *ImageCache) Get(name string) (*ebiten.Image, error) {
	if c == nil || name == "" {
		return nil, fmt.Errorf("render: empty image name")
	}
	if img, ok := c.images[name]; ok {
		return img, nil
	}
	if err, ok := c.failed[name]; ok {
		return nil, err
	}
	src, err := c.decode(name)
	if err != nil {
		err = fmt.Errorf("render: load %s: %w", name, err)
		c.failed[name] = err
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	c.images[name] = img
	return img, nil
}

// Lookup returns a cached image or nil.
func (c *ImageCache) Lookup(name string) *ebiten.Image {
	img, err := c.Get(name)
	if err != nil {
		return nil
	}
	return img
}
