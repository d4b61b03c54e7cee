package game

import (
	"chosenoffset.com/raceday/internal/assets"
	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/render"
	"chosenoffset.com/raceday/internal/vehicle"
)

// Data is the game-wide configuration shared by all scenes. The Manager owns
// it; scenes only touch it for the duration of their own callbacks.
type Data struct {
	Laps         int // Not counted yet, only displayed
	ScreenWidth  int
	ScreenHeight int

	SelectedCar     vehicle.CarClass
	SelectedTrack   race.Track
	SelectedControl race.ControlScheme
}

// NewData returns game data for a logical screen of width x height with
// nothing selected.
func NewData(width, height int) *Data {
	return &Data{
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}

// Context is what every scene callback receives.
type Context struct {
	Data     *Data
	Renderer render.Renderer
	Input    render.InputManager
	Assets   *assets.Store

	// Race setup shared by every race scene.
	Model   vehicle.Model
	Catalog vehicle.Catalog
	Starts  map[race.Track]race.Pose
}
