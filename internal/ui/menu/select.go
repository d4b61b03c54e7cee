package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/render"
	"chosenoffset.com/raceday/internal/ui/racing"
	"chosenoffset.com/raceday/internal/vehicle"
)

var colorSelectClear = color.RGBA{245, 245, 245, 255} // whitesmoke

// Select lets the player pick a track and a car before racing.
type Select struct {
	game.BaseScene

	tracks map[race.Track]button
	cars   map[vehicle.CarClass]button
	play   button
	clicks clicker
}

// NewSelect creates the car and track select screen.
func NewSelect() *Select {
	s := &Select{
		tracks: make(map[race.Track]button, len(race.Tracks)),
		cars:   make(map[vehicle.CarClass]button, len(vehicle.CarClasses)),
		play:   button{label: "Play", rect: render.NewRect(210, 420, 220, 50), scale: 2},
	}

	trackX := []float64{90, 210, 330, 450}
	for i, t := range race.Tracks {
		s.tracks[t] = button{
			label: fmt.Sprintf("Track %d", i+1),
			rect:  render.NewRect(trackX[i], 90, 100, 100),
			scale: 1.2,
		}
	}

	carX := []float64{100, 210, 330, 450}
	for i, c := range vehicle.CarClasses {
		s.cars[c] = button{
			label: fmt.Sprintf("Car %d", i+1),
			rect:  render.NewRect(carX[i], 290, 100, 100),
			scale: 1.2,
		}
	}
	return s
}

// OnEnter ignores a mouse press carried over from the previous screen.
func (s *Select) OnEnter(ctx *game.Context) error {
	s.clicks.prime(ctx.Input)
	return nil
}

// HandleInput records clicked selections in the game data. Play or Enter
// starts the race and Escape goes back.
func (s *Select) HandleInput(ctx *game.Context) game.Switch {
	if ctx.Input.IsKeyJustPressed(render.KeyEscape) {
		return game.Pop()
	}
	if ctx.Input.IsKeyJustPressed(render.KeyEnter) {
		return game.Push(racing.NewScene())
	}

	x, y, ok := s.clicks.click(ctx.Input)
	if !ok {
		return game.None()
	}
	if s.play.hit(x, y) {
		return game.Push(racing.NewScene())
	}
	for t, b := range s.tracks {
		if b.hit(x, y) {
			ctx.Data.SelectedTrack = t
			return game.None()
		}
	}
	for c, b := range s.cars {
		if b.hit(x, y) {
			ctx.Data.SelectedCar = c
			return game.None()
		}
	}
	return game.None()
}

// Draw renders both rows of choices, highlighting the current selection.
func (s *Select) Draw(screen render.Image, ctx *game.Context) {
	screen.Fill(colorSelectClear)
	r := ctx.Renderer

	r.DrawText(screen, "Track Select", 190, 45, colorText, 2.5)
	for _, t := range race.Tracks {
		s.tracks[t].draw(screen, r, ctx.Data.SelectedTrack == t)
	}

	r.DrawText(screen, "Car Select", 200, 245, colorText, 2.5)
	for _, c := range vehicle.CarClasses {
		s.cars[c].draw(screen, r, ctx.Data.SelectedCar == c)
	}

	s.play.draw(screen, r, false)
}
