package render

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns the rectangle at (x, y) with size w x h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the point lies inside r. Edges count as inside.
func (r Rect) Contains(px, py float64) bool {
	inX := px >= r.X && px <= r.X+r.W
	inY := py >= r.Y && py <= r.Y+r.H
	return inX && inY
}

// Center returns the center point of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Fit scales a srcW x srcH image to fit inside r, keeping its aspect ratio,
// and returns the scale plus the top-left offset that centers it.
func (r Rect) Fit(srcW, srcH int) (scale, offX, offY float64) {
	if srcW <= 0 || srcH <= 0 {
		return 0, r.X, r.Y
	}
	sx := r.W / float64(srcW)
	sy := r.H / float64(srcH)
	scale = sx
	if sy < scale {
		scale = sy
	}
	offX = r.X + (r.W-float64(srcW)*scale)/2
	offY = r.Y + (r.H-float64(srcH)*scale)/2
	return scale, offX, offY
}
