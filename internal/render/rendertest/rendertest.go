// Package rendertest provides in-memory implementations of the render
// interfaces for tests that run without a window.
package rendertest

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"chosenoffset.com/raceday/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// Image is a sized image that records what was drawn onto it.
type Image struct {
	Rect     image.Rectangle
	Filled   color.Color
	Draws    int
	Disposed bool
}

// NewImage returns an image of w x h.
func NewImage(w, h int) *Image {
	return &Image{Rect: image.Rect(0, 0, w, h)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }

func (i *Image) Size() (int, int) { return i.Rect.Dx(), i.Rect.Dy() }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect)}
}

func (i *Image) Fill(clr color.Color) { i.Filled = clr }

func (i *Image) Clear() { i.Filled = nil }

func (i *Image) DrawImage(render.Image, *render.DrawImageOptions) { i.Draws++ }

func (i *Image) Dispose() { i.Disposed = true }

// GeoM records the transformations applied to it.
type GeoM struct {
	Ops []string
}

func (g *GeoM) Translate(tx, ty float64) { g.Ops = append(g.Ops, fmt.Sprintf("translate(%g,%g)", tx, ty)) }

func (g *GeoM) Scale(sx, sy float64) { g.Ops = append(g.Ops, fmt.Sprintf("scale(%g,%g)", sx, sy)) }

func (g *GeoM) Rotate(angle float64) { g.Ops = append(g.Ops, fmt.Sprintf("rotate(%g)", angle)) }

func (g *GeoM) Reset() { g.Ops = nil }

// Renderer records text and shapes instead of drawing them.
type Renderer struct {
	Texts   []string
	Rects   []render.Rect
	Circles int
}

func (r *Renderer) FillRect(_ render.Image, rect render.Rect, _ color.Color) {
	r.Rects = append(r.Rects, rect)
}

func (r *Renderer) StrokeRect(_ render.Image, rect render.Rect, _ float32, _ color.Color) {
	r.Rects = append(r.Rects, rect)
}

func (r *Renderer) StrokeCircle(render.Image, float64, float64, float64, float32, color.Color) {
	r.Circles++
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)) * 6 * scale), int(16 * scale)
}

// Input is a scriptable input state. Keys listed in Held are pressed; keys in
// Just are reported as just pressed for one query each.
type Input struct {
	Held    map[render.Key]bool
	Just    map[render.Key]bool
	CursorX int
	CursorY int
	Mouse   bool
}

// NewInput returns an input with nothing pressed.
func NewInput() *Input {
	return &Input{Held: map[render.Key]bool{}, Just: map[render.Key]bool{}}
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Held[key] }

func (in *Input) IsKeyJustPressed(key render.Key) bool {
	pressed := in.Just[key]
	delete(in.Just, key)
	return pressed
}

func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }

func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.Mouse
}

// Click moves the cursor and holds the left button.
func (in *Input) Click(x, y int) {
	in.CursorX, in.CursorY = x, y
	in.Mouse = true
}

// Release lets go of the left button.
func (in *Input) Release() { in.Mouse = false }

// Loader serves images by path. Paths missing from Images fail to load.
type Loader struct {
	mu     sync.Mutex
	Images map[string]*Image
	Loaded []string
}

// NewLoader returns a loader serving the given images.
func NewLoader(images map[string]*Image) *Loader {
	if images == nil {
		images = map[string]*Image{}
	}
	return &Loader{Images: images}
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	l.Loaded = append(l.Loaded, path)
	return img, nil
}
