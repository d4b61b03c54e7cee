package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/raceday/internal/assets"
	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/vehicle"
)

// Track layout in a TrackWidth x TrackHeight image: a rounded rectangle
// loop whose left straight passes through the default start position.
const (
	TrackWidth  = 640
	TrackHeight = 480

	trackMargin = 60
	roadWidth   = 70
)

// Corner radius of each track's loop.
var trackCorners = map[race.Track]int{
	race.Track1: 90,
	race.Track2: 110,
	race.Track3: 40,
	race.Track4: 0,
}

// CreateCar draws a car facing +x.
func CreateCar(body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CarWidth, CarHeight))

	// Tyres stick out above and below the body
	for _, x := range []int{5, 22} {
		FillRect(img, image.Rect(x, 0, x+6, 3), ColorPalette.Tyre)
		FillRect(img, image.Rect(x, CarHeight-3, x+6, CarHeight), ColorPalette.Tyre)
	}
	FillRect(img, image.Rect(1, 2, CarWidth-1, CarHeight-2), body)

	// Light nose, windshield, dark rear
	FillRect(img, image.Rect(CarWidth-4, 3, CarWidth-1, CarHeight-3), Lighten(body, 0.4))
	FillRect(img, image.Rect(17, 4, 22, CarHeight-4), ColorPalette.Glass)
	FillRect(img, image.Rect(1, 3, 3, CarHeight-3), Darken(body, 0.6))
	return img
}

// CreateCarAtlas draws every car class into a 2x2 atlas and returns the
// matching atlas config.
func CreateCarAtlas(imagePath string) (*image.RGBA, *assets.AtlasConfig) {
	const columns = 2

	config := &assets.AtlasConfig{
		Name:       "cars",
		ImagePath:  imagePath,
		CellWidth:  CarWidth,
		CellHeight: CarHeight,
	}
	cells := make([]*image.RGBA, 0, len(vehicle.CarClasses))
	for i, class := range vehicle.CarClasses {
		cells = append(cells, CreateCar(ColorPalette.Cars[i]))
		config.Sprites = append(config.Sprites, assets.SpriteDefinition{
			Name:   class.String(),
			AtlasX: i % columns,
			AtlasY: i / columns,
			Properties: map[string]interface{}{
				"label":          class.Label(),
				"heading_offset": 0.0,
			},
		})
	}
	return CreateAtlas(cells, columns, CarWidth, CarHeight), config
}

// CreateTrack draws track t as a loop of road on grass with a start line
// across the left straight.
func CreateTrack(t race.Track) *image.RGBA {
	img := CreateSolid(TrackWidth, TrackHeight, ColorPalette.Grass)

	outer := image.Rect(trackMargin, trackMargin, TrackWidth-trackMargin, TrackHeight-trackMargin)
	inner := outer.Inset(roadWidth)
	corner := trackCorners[t]
	innerCorner := corner - roadWidth
	if innerCorner < 0 {
		innerCorner = 0
	}

	for y := outer.Min.Y; y < outer.Max.Y; y++ {
		for x := outer.Min.X; x < outer.Max.X; x++ {
			if !inRoundedRect(x, y, outer, corner) || inRoundedRect(x, y, inner, innerCorner) {
				continue
			}
			col := ColorPalette.Asphalt
			// Kerbs along both edges of the road
			if !inRoundedRect(x, y, outer.Inset(3), corner-3) || inRoundedRect(x, y, inner.Inset(-3), innerCorner+3) {
				col = ColorPalette.Kerb
				if (x/6+y/6)%2 == 0 {
					col = ColorPalette.Line
				}
			}
			img.Set(x, y, col)
		}
	}

	// Start line just behind the default grid position
	startY := int(race.DefaultStart.Position.Y) - 12
	FillRect(img, image.Rect(outer.Min.X, startY, inner.Min.X, startY+4), ColorPalette.Line)
	return img
}

// inRoundedRect reports whether (x, y) is inside r with corners of radius.
func inRoundedRect(x, y int, r image.Rectangle, radius int) bool {
	if !(image.Point{X: x, Y: y}).In(r) {
		return false
	}
	if radius <= 0 {
		return true
	}

	// Distance to the nearest corner center, only inside corner squares
	cx := clampInt(x, r.Min.X+radius, r.Max.X-1-radius)
	cy := clampInt(y, r.Min.Y+radius, r.Max.Y-1-radius)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CreateBrickBackground draws a running-bond brick wall.
func CreateBrickBackground(w, h int) *image.RGBA {
	const (
		brickW = 40
		brickH = 16
		mortar = 3
	)
	img := CreateSolid(w, h, ColorPalette.Mortar)
	for row := 0; row*brickH < h; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := -offset; x < w; x += brickW {
			shade := ColorPalette.Brick
			if (row+x/brickW)%3 == 0 {
				shade = Darken(shade, 0.85)
			}
			FillRect(img, image.Rect(x, row*brickH, x+brickW-mortar, (row+1)*brickH-mortar), shade)
		}
	}
	return img
}

// CreateTitle draws a checkered-flag banner for the main menu.
func CreateTitle(w, h int) *image.RGBA {
	const square = 20
	img := CreateSolid(w, h, ColorPalette.Banner)
	for y := 0; y < h; y += square {
		for x := 0; x < w; x += square {
			if (x/square+y/square)%2 == 0 {
				FillRect(img, image.Rect(x, y, x+square, y+square), ColorPalette.Line)
			}
		}
	}
	FillRect(img, image.Rect(0, h/3, w, 2*h/3), ColorPalette.Kerb)
	return img
}

// GenerateAndSave writes a complete placeholder asset set into dir.
func GenerateAndSave(dir string) error {
	log.Printf("Generating placeholder assets in %s...", dir)

	// Ensure assets directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	if err := SavePNG(CreateTitle(600, 120), filepath.Join(dir, assets.TitleImage)); err != nil {
		return fmt.Errorf("failed to save %s: %w", assets.TitleImage, err)
	}
	if err := SaveJPEG(CreateBrickBackground(400, 300), filepath.Join(dir, assets.MenuBackground)); err != nil {
		return fmt.Errorf("failed to save %s: %w", assets.MenuBackground, err)
	}

	atlas, config := CreateCarAtlas("cars.png")
	if err := SavePNG(atlas, filepath.Join(dir, config.ImagePath)); err != nil {
		return fmt.Errorf("failed to save %s: %w", config.ImagePath, err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode car atlas config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, assets.CarAtlasConfig), data, 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", assets.CarAtlasConfig, err)
	}

	for _, t := range race.Tracks {
		name := t.String() + assets.DefaultTrackExt
		if err := SavePNG(CreateTrack(t), filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
	}

	log.Printf("Placeholder assets generated: %d tracks, %d cars", len(race.Tracks), len(vehicle.CarClasses))
	return nil
}
