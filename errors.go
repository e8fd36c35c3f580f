package assets

import (
	"errors"

	"github.com/phanxgames/assets/internal/docnode"
)

// Errors returned by manifest loading and registry lookups. Every error the
// package returns wraps exactly one of these; test with errors.Is.
var (
	// ErrIO means the manifest could not be read.
	ErrIO = errors.New("manifest unreadable")
	// ErrParse means the manifest is not well-formed JSON or YAML.
	ErrParse = docnode.ErrParse
	// ErrMissingField means a mandatory manifest field is absent.
	ErrMissingField = docnode.ErrMissingField
	// ErrMissingArray means a mandatory manifest array is absent or not an array.
	ErrMissingArray = docnode.ErrMissingArray
	// ErrWrongType means a manifest field is present but not coercible.
	ErrWrongType = docnode.ErrWrongType
	// ErrNotFound means no asset is registered under the requested name.
	ErrNotFound = errors.New("asset not found")
	// ErrKindMismatch means the named asset is of a different kind than requested.
	ErrKindMismatch = errors.New("asset kind mismatch")
	// ErrDuplicateName means an asset name was declared twice.
	ErrDuplicateName = errors.New("duplicate asset name")
	// ErrDegenerateTexture means a sprite was cut from a texture with zero width or height.
	ErrDegenerateTexture = errors.New("degenerate texture")
	// ErrSampleOutOfBounds means a transparency sample point lies outside the image.
	ErrSampleOutOfBounds = errors.New("transparency sample out of bounds")
)
