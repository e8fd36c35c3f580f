package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/phanxgames/assets/internal/docnode"
)

// Options configures manifest loading. The zero value uploads through
// EbitenGPU, logs to the package logger, resolves image paths against the
// working directory and picks the syntax from the manifest extension.
type Options struct {
	// GPU uploads texture pixels. Defaults to EbitenGPU.
	GPU GPU
	// Logger overrides the package logger for this load.
	Logger *slog.Logger
	// BaseDir is joined to relative texture file paths.
	BaseDir string
	// Format forces the manifest syntax.
	Format Format
}

// LoadManifest reads the manifest file at path and loads every texture and
// sprite it declares. See LoadManifestData for the document layout.
func LoadManifest(path string, opts Options) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read manifest %q: %w: %w", path, ErrIO, err)
	}
	if opts.Format == FormatAuto {
		opts.Format = docnode.FormatFromPath(path)
	}
	l := newLoader(opts, localOpener(opts))
	return l.load(data)
}

// LoadManifestFS is LoadManifest reading the manifest and every texture file
// from fsys. BaseDir, when set, is a slash-separated directory inside fsys.
func LoadManifestFS(fsys fs.FS, name string, opts Options) (*Registry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read manifest %q: %w: %w", name, ErrIO, err)
	}
	if opts.Format == FormatAuto {
		opts.Format = docnode.FormatFromPath(name)
	}
	l := newLoader(opts, func(file string, sample image.Point) (*Texture, error) {
		if opts.BaseDir != "" {
			file = path.Join(opts.BaseDir, file)
		}
		return LoadTextureFS(fsys, opts.GPU, file, sample)
	})
	return l.load(data)
}

// LoadManifestData loads a manifest held in memory. Texture paths resolve
// against BaseDir on the local filesystem.
//
// The document has two optional root arrays, read in order:
//
//	textures: [{name, file, transparencyX?, transparencyY?}]
//	sprites:  [{name, texture, posx?, posy?, sizex?, sizey?}]
//
// Integer fields also accept strings holding hex ("0x1F"), octal ("037") or
// decimal literals. A sprite may only name a texture declared in the
// textures array. When textures is absent or empty, sprites is not read and
// the registry is empty.
//
// Any error aborts the load; textures already created are released and no
// registry is returned. Texture files that fail to decode do not abort the
// load: they are registered as invalid textures.
func LoadManifestData(data []byte, opts Options) (*Registry, error) {
	l := newLoader(opts, localOpener(opts))
	return l.load(data)
}

type textureOpener func(file string, sample image.Point) (*Texture, error)

func localOpener(opts Options) textureOpener {
	return func(file string, sample image.Point) (*Texture, error) {
		if opts.BaseDir != "" && !filepath.IsAbs(file) {
			file = filepath.Join(opts.BaseDir, file)
		}
		return LoadTexture(opts.GPU, file, sample)
	}
}

type loader struct {
	format   Format
	log      *slog.Logger
	open     textureOpener
	reg      *Registry
	textures int
	sprites  int
}

func newLoader(opts Options, open textureOpener) *loader {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}
	return &loader{format: opts.Format, log: log, open: open}
}

func (l *loader) load(data []byte) (*Registry, error) {
	root, err := docnode.Parse(data, l.format)
	if err != nil {
		return nil, fmt.Errorf("assets: manifest: %w", err)
	}

	l.reg = NewRegistry()
	if err := l.loadAll(root); err != nil {
		l.reg.Close()
		return nil, err
	}
	l.log.Info("assets: manifest loaded", "textures", l.textures, "sprites", l.sprites)
	return l.reg, nil
}

func (l *loader) loadAll(root docnode.Node) error {
	textures, ok := docnode.GetByPath(root, "/textures")
	if !ok {
		return nil
	}
	if err := l.loadTextures(textures); err != nil {
		return err
	}
	sprites, ok := docnode.GetByPath(root, "/sprites")
	if !ok {
		return nil
	}
	return l.loadSprites(sprites)
}

func (l *loader) loadTextures(arr docnode.Node) error {
	if arr.Kind() != docnode.KindArray {
		return fmt.Errorf("assets: textures: %w (got %s)", ErrWrongType, arr)
	}
	for i, entry := range arr.Elems() {
		name, err := docnode.FieldOrFail[string](entry, "name")
		if err != nil {
			return fmt.Errorf("assets: textures[%d]: %w", i, err)
		}
		file, err := docnode.FieldOrFail[string](entry, "file")
		if err != nil {
			return fmt.Errorf("assets: texture %q: %w", name, err)
		}
		sample := image.Point{
			X: docnode.FieldOr(entry, "transparencyX", 0),
			Y: docnode.FieldOr(entry, "transparencyY", 0),
		}

		tex, err := l.open(file, sample)
		if err != nil {
			return fmt.Errorf("assets: texture %q: %w", name, err)
		}
		if err := l.reg.Insert(name, TextureAsset(tex)); err != nil {
			tex.Release()
			return err
		}
		l.textures++
		l.log.Debug("assets: texture loaded", "name", name, "file", file,
			"width", tex.Width(), "height", tex.Height(), "valid", tex.IsValid())
	}
	return nil
}

func (l *loader) loadSprites(arr docnode.Node) error {
	if arr.Kind() != docnode.KindArray {
		return fmt.Errorf("assets: sprites: %w (got %s)", ErrWrongType, arr)
	}
	for i, entry := range arr.Elems() {
		name, err := docnode.FieldOrFail[string](entry, "name")
		if err != nil {
			return fmt.Errorf("assets: sprites[%d]: %w", i, err)
		}
		texName, err := docnode.FieldOrFail[string](entry, "texture")
		if err != nil {
			return fmt.Errorf("assets: sprite %q: %w", name, err)
		}
		rect := Rect{
			X: docnode.FieldOr(entry, "posx", 0),
			Y: docnode.FieldOr(entry, "posy", 0),
			W: docnode.FieldOr(entry, "sizex", 0),
			H: docnode.FieldOr(entry, "sizey", 0),
		}

		tex, err := l.reg.Texture(texName)
		if err != nil {
			return fmt.Errorf("assets: sprite %q: %w", name, err)
		}
		spr, err := NewSprite(tex, rect)
		if err != nil {
			return fmt.Errorf("assets: sprite %q: %w", name, err)
		}
		if err := l.reg.Insert(name, SpriteAsset(spr)); err != nil {
			spr.Release()
			return err
		}
		l.sprites++
		l.log.Debug("assets: sprite loaded", "name", name, "texture", texName,
			"rect", rect, "rel", spr.RelRect())
	}
	return nil
}
