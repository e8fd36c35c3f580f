package assets

import "github.com/phanxgames/assets/internal/docnode"

// Vec2 is a 2D vector used for on-screen positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is a pixel rectangle inside a texture. The origin is the top-left
// corner, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// RelRect is a rectangle in normalized texture coordinates. X/Y is the
// top-left corner and Right/Bottom the opposite corner, each a fraction of
// the texture's width or height.
type RelRect struct {
	X, Y, Right, Bottom float64
}

// Format selects the manifest syntax.
type Format = docnode.Format

const (
	FormatAuto = docnode.FormatAuto // by file extension, JSON otherwise
	FormatJSON = docnode.FormatJSON
	FormatYAML = docnode.FormatYAML
)
