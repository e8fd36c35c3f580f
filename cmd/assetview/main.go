// Assetview loads an asset manifest and shows every sprite it declares as a
// clickable button. Clicking a sprite logs its name and source rectangle.
//
// Configuration comes from the environment:
//
//	ASSETVIEW_MANIFEST  manifest path (default assets/pieces.json); a
//	                    command-line argument overrides it
//	ASSETVIEW_BASE_DIR  directory texture paths are relative to
//	ASSETVIEW_SCALE     sprite scale (default 1)
//	ASSETVIEW_WIDTH     window width (default 640)
//	ASSETVIEW_HEIGHT    window height (default 480)
//	ASSETVIEW_DEBUG     log every loaded asset
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/assets"
)

type config struct {
	Manifest string  `env:"ASSETVIEW_MANIFEST" envDefault:"assets/pieces.json"`
	BaseDir  string  `env:"ASSETVIEW_BASE_DIR"`
	Scale    float64 `env:"ASSETVIEW_SCALE" envDefault:"1"`
	Width    int     `env:"ASSETVIEW_WIDTH" envDefault:"640"`
	Height   int     `env:"ASSETVIEW_HEIGHT" envDefault:"480"`
	Debug    bool    `env:"ASSETVIEW_DEBUG"`
}

type viewer struct {
	cfg     config
	reg     *assets.Registry
	sprites []string
	invalid []string
	painter *assets.ScreenPainter
	pointer assets.PointerState
	log     *slog.Logger
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "assetview: config: %v\n", err)
		os.Exit(2)
	}
	if len(os.Args) > 1 {
		cfg.Manifest = os.Args[1]
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	assets.SetLogger(logger)

	reg, err := assets.LoadManifest(cfg.Manifest, assets.Options{BaseDir: cfg.BaseDir})
	if err != nil {
		logger.Error("assetview: load failed", "manifest", cfg.Manifest, "err", err)
		os.Exit(1)
	}
	defer reg.Close()

	v := newViewer(cfg, reg, logger)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("assetview: " + cfg.Manifest)
	if err := ebiten.RunGame(v); err != nil {
		logger.Error("assetview: run", "err", err)
		os.Exit(1)
	}
}

func newViewer(cfg config, reg *assets.Registry, logger *slog.Logger) *viewer {
	v := &viewer{
		cfg:     cfg,
		reg:     reg,
		painter: assets.NewScreenPainter(),
		log:     logger,
	}
	v.painter.Origin = assets.Vec2{X: 8, Y: 24}
	v.painter.WrapWidth = float64(cfg.Width - 16)

	for _, name := range reg.Names() {
		switch k, _ := reg.Kind(name); k {
		case assets.KindSprite:
			v.sprites = append(v.sprites, name)
		case assets.KindTexture:
			if tex := assets.MustGet[*assets.Texture](reg, name); !tex.IsValid() {
				v.invalid = append(v.invalid, name)
			}
		}
	}
	return v
}

func (v *viewer) Update() error {
	v.pointer = assets.ReadPointer()
	v.painter.Update(1 / float32(ebiten.TPS()))
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d sprites, %d invalid textures",
		len(v.sprites), len(v.invalid)), 8, 4)

	v.painter.Begin(screen, v.pointer)
	for _, name := range v.sprites {
		spr := assets.MustGet[*assets.Sprite](v.reg, name)
		if spr.DrawButton(v.painter, name, v.cfg.Scale) {
			v.log.Info("assetview: clicked", "sprite", name, "rect", spr.Rect(), "rel", spr.RelRect())
		}
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}
