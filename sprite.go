package assets

import "fmt"

// Sprite is a named sub-rectangle of a Texture. It keeps a reference on the
// texture until Release is called.
type Sprite struct {
	tex      *Texture
	rect     Rect
	rel      RelRect
	released bool
}

// NewSprite cuts rect out of tex and retains tex. It fails with
// ErrDegenerateTexture when tex has zero width or height, which includes
// textures whose image failed to decode. rect is not checked against the
// texture bounds; rectangles outside it yield coordinates outside [0,1].
func NewSprite(tex *Texture, rect Rect) (*Sprite, error) {
	if tex.Width() == 0 || tex.Height() == 0 {
		return nil, fmt.Errorf("assets: sprite over %q (%dx%d): %w",
			tex.Path(), tex.Width(), tex.Height(), ErrDegenerateTexture)
	}
	return &Sprite{
		tex:  tex.Retain(),
		rect: rect,
		rel:  normalize(rect, tex.Width(), tex.Height()),
	}, nil
}

// normalize expresses r as fractions of a w×h texture. Right and Bottom are
// computed from the normalized corner plus the normalized extent.
func normalize(r Rect, w, h int) RelRect {
	fw, fh := float64(w), float64(h)
	x := float64(r.X) / fw
	y := float64(r.Y) / fh
	return RelRect{
		X:      x,
		Y:      y,
		Right:  x + float64(r.W)/fw,
		Bottom: y + float64(r.H)/fh,
	}
}

// Texture returns the texture the sprite was cut from.
func (s *Sprite) Texture() *Texture { return s.tex }

// Rect returns the source rectangle in texture pixels.
func (s *Sprite) Rect() Rect { return s.rect }

// RelRect returns the source rectangle in normalized texture coordinates.
func (s *Sprite) RelRect() RelRect { return s.rel }

// Size returns the on-screen size of the sprite drawn at scale.
func (s *Sprite) Size(scale float64) Vec2 {
	return Vec2{X: float64(s.rect.W) * scale, Y: float64(s.rect.H) * scale}
}

// Draw paints the sprite at the painter's cursor, scaled by scale.
func (s *Sprite) Draw(p Painter, scale float64) {
	p.Image(s.tex.Image(), s.Size(scale), s.rel)
}

// DrawButton paints the sprite as a clickable region identified by id and
// reports whether it was activated this frame.
func (s *Sprite) DrawButton(p Painter, id string, scale float64) bool {
	return p.ImageButton(id, s.tex.Image(), s.Size(scale), s.rel)
}

// Release drops the sprite's texture reference. It is safe to call more
// than once.
func (s *Sprite) Release() {
	if s.released {
		return
	}
	s.released = true
	s.tex.Release()
}
