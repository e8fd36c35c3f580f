package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture is one decoded image uploaded to the GPU, with every pixel that
// matches the color at the transparency sample point made fully transparent.
//
// A Texture is reference counted: LoadTexture returns it holding one
// reference, each Sprite cut from it holds another, and the GPU image is
// released when the count drops to zero. Textures must not be copied.
//
// A texture whose file could not be opened or decoded is still returned but
// reports IsValid() == false, has zero size and a nil Image.
type Texture struct {
	_      noCopy
	image  *ebiten.Image
	gpu    GPU
	path   string
	width  int
	height int
	key    color.NRGBA
	refs   int
}

// noCopy makes `go vet` flag copies of a Texture.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// LoadTexture decodes the image at path, keys out the color found at sample
// and uploads the result through gpu. A nil gpu uses EbitenGPU.
//
// Failing to open or decode the file is not an error: the returned texture is
// invalid instead. An error is returned only when sample lies outside the
// decoded image (ErrSampleOutOfBounds) or the upload fails.
func LoadTexture(gpu GPU, path string, sample image.Point) (*Texture, error) {
	return loadTexture(gpu, path, sample, func() (io.ReadCloser, error) {
		return os.Open(path)
	})
}

// LoadTextureFS is LoadTexture reading path from fsys.
func LoadTextureFS(fsys fs.FS, gpu GPU, path string, sample image.Point) (*Texture, error) {
	return loadTexture(gpu, path, sample, func() (io.ReadCloser, error) {
		return fsys.Open(path)
	})
}

func loadTexture(gpu GPU, path string, sample image.Point, open func() (io.ReadCloser, error)) (*Texture, error) {
	if gpu == nil {
		gpu = EbitenGPU{}
	}
	t := &Texture{gpu: gpu, path: path, refs: 1}

	src, err := decodeImage(open)
	if err != nil {
		Logger().Warn("assets: texture decode failed, keeping invalid texture",
			"path", path, "err", err)
		return t, nil
	}

	b := src.Bounds()
	if !sample.In(image.Rect(0, 0, b.Dx(), b.Dy())) {
		return nil, fmt.Errorf("assets: texture %q: sample (%d,%d) outside %dx%d: %w",
			path, sample.X, sample.Y, b.Dx(), b.Dy(), ErrSampleOutOfBounds)
	}

	keyed, key := applyColorKey(src, sample)
	img, err := gpu.Upload(keyed)
	if err != nil {
		return nil, fmt.Errorf("assets: texture %q: upload: %w", path, err)
	}
	t.image = img
	t.width = b.Dx()
	t.height = b.Dy()
	t.key = key
	return t, nil
}

func decodeImage(open func() (io.ReadCloser, error)) (image.Image, error) {
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// applyColorKey copies src into a zero-origin NRGBA image and clears the
// alpha of every pixel whose RGB equals the pixel at sample.
func applyColorKey(src image.Image, sample image.Point) (*image.NRGBA, color.NRGBA) {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)

	key := dst.NRGBAAt(sample.X, sample.Y)
	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*b.Dx()]
		for i := 0; i < len(row); i += 4 {
			if row[i] == key.R && row[i+1] == key.G && row[i+2] == key.B {
				row[i+3] = 0
			}
		}
	}
	return dst, key
}

// IsValid reports whether the image was decoded and uploaded.
func (t *Texture) IsValid() bool { return t.image != nil }

// Image returns the GPU image, or nil for an invalid or released texture.
func (t *Texture) Image() *ebiten.Image { return t.image }

// Width returns the image width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the image height in pixels.
func (t *Texture) Height() int { return t.height }

// Path returns the file the texture was loaded from.
func (t *Texture) Path() string { return t.path }

// ColorKey returns the color that was made transparent.
func (t *Texture) ColorKey() color.NRGBA { return t.key }

// Refs returns the number of live references.
func (t *Texture) Refs() int { return t.refs }

// Retain adds a reference and returns t.
func (t *Texture) Retain() *Texture {
	t.refs++
	return t
}

// Release drops a reference. The GPU image is released when the last
// reference goes; further calls are no-ops.
func (t *Texture) Release() {
	if t.refs <= 0 {
		return
	}
	t.refs--
	if t.refs == 0 && t.image != nil {
		t.gpu.Release(t.image)
		t.image = nil
	}
}
