package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(210, 285, 220, 50)

	tests := []struct {
		name   string
		x, y   float64
		inside bool
	}{
		{"center", 320, 310, true},
		{"top-left corner", 210, 285, true},
		{"bottom-right corner", 430, 335, true},
		{"left of rect", 209.9, 300, false},
		{"below rect", 300, 335.1, false},
		{"far away", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRectCenter(t *testing.T) {
	x, y := NewRect(10, 20, 100, 40).Center()
	assert.Equal(t, 60.0, x)
	assert.Equal(t, 40.0, y)
}

func TestRectFit(t *testing.T) {
	screen := NewRect(0, 0, 640, 480)

	scale, x, y := screen.Fit(1280, 720)
	assert.Equal(t, 0.5, scale)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 60.0, y)

	scale, x, y = screen.Fit(240, 240)
	assert.Equal(t, 2.0, scale)
	assert.Equal(t, 80.0, x)
	assert.Equal(t, 0.0, y)

	scale, _, _ = screen.Fit(0, 10)
	assert.Equal(t, 0.0, scale)
}
