package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GPU turns decoded pixel data into drawable images and frees them again.
// Implementations are used from a single goroutine.
type GPU interface {
	// Upload copies img into a new GPU image.
	Upload(img image.Image) (*ebiten.Image, error)
	// Release frees an image returned by Upload. It is called exactly once
	// per uploaded image.
	Release(img *ebiten.Image)
}

// EbitenGPU uploads through Ebitengine's image API. It is the default GPU.
type EbitenGPU struct{}

// Upload implements GPU.
func (EbitenGPU) Upload(img image.Image) (*ebiten.Image, error) {
	return ebiten.NewImageFromImage(img), nil
}

// Release implements GPU.
func (EbitenGPU) Release(img *ebiten.Image) {
	img.Deallocate()
}
