package assets

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Painter is the immediate-mode GUI layer sprites draw themselves into.
// img may be nil for sprites over invalid textures; implementations skip the
// drawing but still lay out the space.
type Painter interface {
	// Image draws the uv region of img at the cursor with the given size.
	Image(img *ebiten.Image, size Vec2, uv RelRect)
	// ImageButton draws like Image and reports whether the region with the
	// given id was activated this frame.
	ImageButton(id string, img *ebiten.Image, size Vec2, uv RelRect) bool
}

// ButtonEvent describes one button activation.
type ButtonEvent struct {
	ID     string
	X, Y   float64 // pointer position in screen pixels
	Bounds HitRect // button rectangle in screen pixels
}

// EventSink receives button activations, for example an ECS event bus.
type EventSink interface {
	EmitButton(ButtonEvent)
}

// HitRect is an axis-aligned screen rectangle used for pointer hit testing.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle. Points on the
// edge are inside.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PointerState is the pointer input for one frame.
type PointerState struct {
	X, Y     float64
	Pressed  bool // left button went down this frame
	Released bool // left button went up this frame
}

// ReadPointer samples the mouse through Ebitengine. Call it from Update.
func ReadPointer() PointerState {
	x, y := ebiten.CursorPosition()
	return PointerState{
		X:        float64(x),
		Y:        float64(y),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

const (
	hoverFadeSeconds = 0.15
	hoverDim         = 0.25 // color scale reduction at full hover
)

// hoverFade eases a button's highlight in and out.
type hoverFade struct {
	tween  *gween.Tween
	value  float32
	target float32
}

func (h *hoverFade) set(target float32) {
	if h.target == target {
		return
	}
	h.target = target
	h.tween = gween.New(h.value, target, hoverFadeSeconds, ease.OutQuad)
}

func (h *hoverFade) update(dt float32) {
	if h.tween == nil {
		return
	}
	v, done := h.tween.Update(dt)
	h.value = v
	if done {
		h.tween = nil
	}
}

// ScreenPainter lays sprites out left to right on an Ebitengine image,
// wrapping to a new row when the next item would cross WrapWidth. A button
// activates when the left button is pressed and released over it.
//
// Per frame: Begin (with the pointer read during Update), draw calls, then
// Update from the next game tick to advance hover animations.
type ScreenPainter struct {
	Origin    Vec2
	Spacing   float64
	WrapWidth float64 // 0 disables wrapping
	Sink      EventSink

	target  *ebiten.Image
	pointer PointerState
	pen     Vec2
	rowH    float64
	armed   string // id of the button the pointer went down on
	fades   map[string]*hoverFade
}

// NewScreenPainter returns a painter with 4px spacing and no wrapping.
func NewScreenPainter() *ScreenPainter {
	return &ScreenPainter{
		Spacing: 4,
		fades:   make(map[string]*hoverFade),
	}
}

// Begin starts a frame drawing into target with the given pointer state.
// target may be nil to run layout and hit testing without drawing.
func (p *ScreenPainter) Begin(target *ebiten.Image, pointer PointerState) {
	p.target = target
	p.pointer = pointer
	p.pen = p.Origin
	p.rowH = 0
	if pointer.Pressed {
		p.armed = ""
	}
}

// Update advances hover animations by dt seconds.
func (p *ScreenPainter) Update(dt float32) {
	for _, f := range p.fades {
		f.update(dt)
	}
}

// NewLine moves the cursor to the start of the next row.
func (p *ScreenPainter) NewLine() {
	p.pen.X = p.Origin.X
	p.pen.Y += p.rowH + p.Spacing
	p.rowH = 0
}

// Cursor returns the position the next item will be placed at, before any
// wrapping.
func (p *ScreenPainter) Cursor() Vec2 { return p.pen }

// place reserves size at the cursor and returns its rectangle.
func (p *ScreenPainter) place(size Vec2) HitRect {
	if p.WrapWidth > 0 && p.pen.X > p.Origin.X && p.pen.X+size.X > p.Origin.X+p.WrapWidth {
		p.NewLine()
	}
	r := HitRect{X: p.pen.X, Y: p.pen.Y, Width: size.X, Height: size.Y}
	p.pen.X += size.X + p.Spacing
	p.rowH = math.Max(p.rowH, size.Y)
	return r
}

// Image implements Painter.
func (p *ScreenPainter) Image(img *ebiten.Image, size Vec2, uv RelRect) {
	r := p.place(size)
	p.blit(img, r, uv, 0)
}

// ImageButton implements Painter.
func (p *ScreenPainter) ImageButton(id string, img *ebiten.Image, size Vec2, uv RelRect) bool {
	r := p.place(size)
	over := r.Contains(p.pointer.X, p.pointer.Y)

	f, ok := p.fades[id]
	if !ok {
		f = &hoverFade{}
		p.fades[id] = f
	}
	if over {
		f.set(1)
	} else {
		f.set(0)
	}
	p.blit(img, r, uv, f.value)

	if over && p.pointer.Pressed {
		p.armed = id
	}
	if !p.pointer.Released || p.armed != id {
		return false
	}
	p.armed = ""
	if !over {
		return false
	}
	if p.Sink != nil {
		p.Sink.EmitButton(ButtonEvent{ID: id, X: p.pointer.X, Y: p.pointer.Y, Bounds: r})
	}
	return true
}

// blit draws the uv region of img stretched over r, dimmed by hover.
func (p *ScreenPainter) blit(img *ebiten.Image, r HitRect, uv RelRect, hover float32) {
	if p.target == nil || img == nil {
		return
	}
	src := uvBounds(img.Bounds(), uv)
	if src.Dx() <= 0 || src.Dy() <= 0 {
		return
	}
	sub := img.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(src.Dx()), r.Height/float64(src.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	if hover > 0 {
		c := 1 - hoverDim*hover
		op.ColorScale.Scale(c, c, c, 1)
	}
	p.target.DrawImage(sub, op)
}

// uvBounds maps a normalized rectangle back onto pixel bounds.
func uvBounds(b image.Rectangle, uv RelRect) image.Rectangle {
	w, h := float64(b.Dx()), float64(b.Dy())
	return image.Rect(
		b.Min.X+int(math.Round(uv.X*w)),
		b.Min.Y+int(math.Round(uv.Y*h)),
		b.Min.X+int(math.Round(uv.Right*w)),
		b.Min.Y+int(math.Round(uv.Bottom*h)),
	).Intersect(b)
}
