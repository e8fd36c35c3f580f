package assets

import (
	"fmt"
	"maps"
	"slices"
)

// Kind identifies which case of Asset is populated.
type Kind uint8

const (
	KindNone    Kind = iota // zero Asset
	KindTexture             // *Texture
	KindSprite              // *Sprite
)

func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindSprite:
		return "sprite"
	default:
		return "none"
	}
}

// Asset is a registry entry: exactly one of a texture or a sprite.
type Asset struct {
	kind    Kind
	texture *Texture
	sprite  *Sprite
}

// TextureAsset wraps t. The registry takes over the caller's reference.
func TextureAsset(t *Texture) Asset { return Asset{kind: KindTexture, texture: t} }

// SpriteAsset wraps s. The registry takes over the sprite.
func SpriteAsset(s *Sprite) Asset { return Asset{kind: KindSprite, sprite: s} }

// Kind returns the populated case.
func (a Asset) Kind() Kind { return a.kind }

func (a Asset) release() {
	switch a.kind {
	case KindTexture:
		a.texture.Release()
	case KindSprite:
		a.sprite.Release()
	}
}

// Registry maps unique names to textures and sprites. It owns its entries:
// Close releases every texture reference and sprite it holds. A Registry is
// not safe for concurrent mutation.
type Registry struct {
	entries map[string]Asset
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Asset)}
}

// Insert adds a under name. It fails with ErrDuplicateName if the name is
// taken; the caller keeps ownership of a in that case.
func (r *Registry) Insert(name string, a Asset) error {
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("assets: %s %q: %w", a.kind, name, ErrDuplicateName)
	}
	r.entries[name] = a
	return nil
}

// Replace stores a under name, releasing any previous entry.
func (r *Registry) Replace(name string, a Asset) {
	if old, ok := r.entries[name]; ok {
		old.release()
	}
	r.entries[name] = a
}

func (r *Registry) lookup(name string, want Kind) (Asset, error) {
	a, ok := r.entries[name]
	if !ok {
		return Asset{}, fmt.Errorf("assets: %s %q: %w", want, name, ErrNotFound)
	}
	if a.kind != want {
		return Asset{}, fmt.Errorf("assets: %q is a %s, not a %s: %w", name, a.kind, want, ErrKindMismatch)
	}
	return a, nil
}

// Texture returns the texture registered under name.
func (r *Registry) Texture(name string) (*Texture, error) {
	a, err := r.lookup(name, KindTexture)
	return a.texture, err
}

// Sprite returns the sprite registered under name.
func (r *Registry) Sprite(name string) (*Sprite, error) {
	a, err := r.lookup(name, KindSprite)
	return a.sprite, err
}

// Get returns the asset registered under name as T. It fails with
// ErrNotFound for unknown names and ErrKindMismatch when the entry holds the
// other kind.
func Get[T *Texture | *Sprite](r *Registry, name string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case *Texture:
		t, err := r.Texture(name)
		return any(t).(T), err
	default:
		s, err := r.Sprite(name)
		return any(s).(T), err
	}
}

// MustGet is Get that panics on error, for assets the program cannot run
// without.
func MustGet[T *Texture | *Sprite](r *Registry, name string) T {
	v, err := Get[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Kind returns the kind registered under name.
func (r *Registry) Kind(name string) (Kind, bool) {
	a, ok := r.entries[name]
	return a.kind, ok
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// Names returns all entry names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Close releases every entry and empties the registry. Textures still
// referenced by sprites held elsewhere stay alive until those are released.
func (r *Registry) Close() {
	for name, a := range r.entries {
		a.release()
		delete(r.entries, name)
	}
}
