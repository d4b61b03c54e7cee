// Package menu implements the front-end scenes: the main menu, the car and
// track select screen and the settings screen.
package menu

import (
	"image/color"

	"chosenoffset.com/raceday/internal/render"
)

var (
	colorButton   = color.RGBA{222, 184, 135, 255} // burlywood
	colorSelected = color.RGBA{218, 165, 32, 255}
	colorOutline  = color.RGBA{120, 60, 20, 255}
	colorText     = color.RGBA{0, 0, 0, 255}
)

// button is a clickable, labeled rectangle.
type button struct {
	label string
	rect  render.Rect
	scale float64 // Label text scale
}

// hit reports whether the point is on the button.
func (b button) hit(x, y float64) bool {
	return b.rect.Contains(x, y)
}

// draw renders the button with its label centered. Selected buttons get a
// highlight fill and an outline.
func (b button) draw(screen render.Image, r render.Renderer, selected bool) {
	fill := colorButton
	if selected {
		fill = colorSelected
	}
	r.FillRect(screen, b.rect, fill)
	if selected {
		r.StrokeRect(screen, b.rect, 3, colorOutline)
	}

	scale := b.scale
	if scale <= 0 {
		scale = 1
	}
	w, h := r.MeasureText(b.label, scale)
	cx, cy := b.rect.Center()
	r.DrawText(screen, b.label, int(cx)-w/2, int(cy)-h/2, colorText, scale)
}

// clicker turns the held left mouse button into single clicks.
type clicker struct {
	lastMouseClick bool
}

// prime records the current button state so a press carried over from the
// previous scene is not reported as a click.
func (c *clicker) prime(input render.InputManager) {
	c.lastMouseClick = input.IsMouseButtonPressed(render.MouseButtonLeft)
}

// click returns the cursor position if the button went down this frame.
func (c *clicker) click(input render.InputManager) (x, y float64, ok bool) {
	mousePressed := input.IsMouseButtonPressed(render.MouseButtonLeft)

	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !c.lastMouseClick
	c.lastMouseClick = mousePressed
	if !mouseClicked {
		return 0, 0, false
	}

	mx, my := input.GetCursorPosition()
	return float64(mx), float64(my), true
}
