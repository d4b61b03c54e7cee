// Package placeholders draws stand-in art so the game runs without an
// asset pack: menu images, a car atlas and one image per track.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
)

// Car sprite cell size. Cars face +x in the atlas.
const (
	CarWidth  = 32
	CarHeight = 16
)

// ColorPalette defines the placeholder colors
var ColorPalette = struct {
	// Track
	Grass   color.RGBA
	Asphalt color.RGBA
	Kerb    color.RGBA
	Line    color.RGBA

	// Menu
	Brick  color.RGBA
	Mortar color.RGBA
	Banner color.RGBA

	// Cars, in menu order
	Cars [4]color.RGBA

	Glass color.RGBA
	Tyre  color.RGBA
}{
	Grass:   color.RGBA{70, 140, 60, 255},
	Asphalt: color.RGBA{60, 60, 65, 255},
	Kerb:    color.RGBA{200, 40, 40, 255},
	Line:    color.RGBA{240, 240, 240, 255},

	Brick:  color.RGBA{150, 70, 50, 255},
	Mortar: color.RGBA{190, 180, 165, 255},
	Banner: color.RGBA{30, 30, 35, 255},

	Cars: [4]color.RGBA{
		{40, 90, 200, 255},   // Default: blue
		{120, 120, 130, 255}, // High inertia: gray
		{230, 200, 40, 255},  // Responsive: yellow
		{190, 60, 40, 255},   // Stubborn: rust
	},

	Glass: color.RGBA{170, 210, 230, 255},
	Tyre:  color.RGBA{20, 20, 20, 255},
}

// CreateSolid creates a w x h image of one color
func CreateSolid(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// FillRect fills r on img
func FillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
}

// CreateAtlas lays cells out left to right, top to bottom, columns per row.
// Cells must all be cellW x cellH.
func CreateAtlas(cells []*image.RGBA, columns, cellW, cellH int) *image.RGBA {
	rows := (len(cells) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))

	// Copy each cell into the atlas
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		x := (i % columns) * cellW
		y := (i / columns) * cellH
		draw.Draw(atlas, image.Rect(x, y, x+cellW, y+cellH), cell, image.Point{}, draw.Src)
	}
	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveJPEG saves an image to a JPEG file
func SaveJPEG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
