// Package racing implements the race scene and its pause overlay.
package racing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"chosenoffset.com/raceday/internal/assets"
	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/render"
)

// Car sprite properties read from the atlas.
const (
	// HeadingOffsetProperty is added to the heading, in degrees, when the
	// sprite does not face +x in the atlas.
	HeadingOffsetProperty = "heading_offset"
	LabelProperty         = "label"
)

var (
	colorGround = color.RGBA{245, 245, 245, 255}
	colorRing   = color.RGBA{218, 165, 32, 255} // goldenrod
	colorHUD    = color.RGBA{255, 255, 255, 255}
	colorHUDBox = color.RGBA{0, 0, 0, 160}
)

// Placeholder ring drawn when no track image is selected.
const (
	ringRadius    = 200.0
	ringThickness = 75.0
)

// Scene drives one race: it owns the session and draws the track, the car
// and the HUD.
type Scene struct {
	game.BaseScene

	session   *race.Session
	track     render.Image // nil when no track is selected
	car       render.Image
	carSprite *assets.SpriteDefinition

	opts render.DrawImageOptions
}

// NewScene creates a race scene. The race is set up when it is entered.
func NewScene() *Scene {
	return &Scene{}
}

// Session returns the race session, or nil before the scene is entered.
func (s *Scene) Session() *race.Session {
	return s.session
}

// OnEnter starts a race with the selections in the game data and loads the
// track and car images.
func (s *Scene) OnEnter(ctx *game.Context) error {
	s.session = race.NewSession(ctx.Model, ctx.Catalog, ctx.Starts)
	s.session.Enter(ctx.Data.SelectedCar, ctx.Data.SelectedTrack)

	track, err := ctx.Assets.Track(s.session.Track())
	if err != nil {
		return fmt.Errorf("failed to load track: %w", err)
	}
	s.track = track

	car, sprite, err := ctx.Assets.CarSprite(s.session.Car())
	if err != nil {
		return fmt.Errorf("failed to load car: %w", err)
	}
	s.car = car
	s.carSprite = sprite

	log.Printf("Race: %s on %s (%s controls)", s.CarLabel(), s.session.Track(), ctx.Data.SelectedControl)
	return nil
}

// HandleInput reads the driving keys for this frame. P pauses and Escape
// leaves the race.
func (s *Scene) HandleInput(ctx *game.Context) game.Switch {
	in := ctx.Input

	if in.IsKeyJustPressed(render.KeyEscape) {
		return game.Pop()
	}
	if in.IsKeyJustPressed(render.KeyP) {
		// Nothing stays held while paused.
		s.session.HandleInput(race.InputSnapshot{Scheme: ctx.Data.SelectedControl})
		return game.Push(NewPause(s))
	}

	s.session.HandleInput(race.InputSnapshot{
		Accelerate: in.IsKeyPressed(render.KeyW) || in.IsKeyPressed(render.KeyUp),
		Brake:      in.IsKeyPressed(render.KeyS) || in.IsKeyPressed(render.KeyDown),
		SteerLeft:  in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft),
		SteerRight: in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight),
		Scheme:     ctx.Data.SelectedControl,
	})
	return game.None()
}

// Update advances the race.
func (s *Scene) Update(dt float64, _ *game.Context) game.Switch {
	s.session.Update(dt)
	return game.None()
}

// Draw renders the track, the car and the HUD.
func (s *Scene) Draw(screen render.Image, ctx *game.Context) {
	screen.Fill(colorGround)
	s.drawTrack(screen, ctx)
	s.drawCar(screen)
	s.drawHUD(screen, ctx)
}

func (s *Scene) drawTrack(screen render.Image, ctx *game.Context) {
	w, h := float64(ctx.Data.ScreenWidth), float64(ctx.Data.ScreenHeight)
	if s.track == nil {
		ctx.Renderer.StrokeCircle(screen, w/2, h/2, ringRadius, ringThickness, colorRing)
		return
	}

	tw, th := s.track.Size()
	scale, offX, offY := render.NewRect(0, 0, w, h).Fit(tw, th)
	opts := s.drawOptions()
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(offX, offY)
	screen.DrawImage(s.track, opts)
}

func (s *Scene) drawCar(screen render.Image) {
	if s.car == nil {
		return
	}
	state := s.session.State()
	heading := state.Heading
	if s.carSprite != nil {
		heading += s.carSprite.GetPropertyFloat(HeadingOffsetProperty, 0)
	}

	w, h := s.car.Size()
	opts := s.drawOptions()
	opts.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	opts.GeoM.Rotate(heading * math.Pi / 180)
	opts.GeoM.Translate(state.Position.X, state.Position.Y)
	screen.DrawImage(s.car, opts)
}

// drawOptions returns the scene's draw options reset to the identity
// transform. They are shared by every image the scene draws.
func (s *Scene) drawOptions() *render.DrawImageOptions {
	if s.opts.GeoM == nil {
		s.opts.GeoM = render.NewGeoM()
	}
	s.opts.GeoM.Reset()
	return &s.opts
}

// CarLabel returns the display name of the car, taken from the sprite's
// label property when the atlas sets one.
func (s *Scene) CarLabel() string {
	label := s.session.Car().Label()
	if s.carSprite != nil {
		label = s.carSprite.GetPropertyString(LabelProperty, label)
	}
	return label
}

// HUDLines returns the text shown in the heads-up display.
func (s *Scene) HUDLines(data *game.Data) []string {
	return []string{
		fmt.Sprintf("Time: %.2f", s.session.Elapsed()),
		fmt.Sprintf("Speed: %.0f", math.Abs(s.session.State().Speed)),
		fmt.Sprintf("Lap: %d", data.Laps),
		fmt.Sprintf("%s / %s", s.CarLabel(), s.session.Track()),
	}
}

func (s *Scene) drawHUD(screen render.Image, ctx *game.Context) {
	lines := s.HUDLines(ctx.Data)
	const (
		x          = 10
		y          = 10
		lineHeight = 18
	)
	ctx.Renderer.FillRect(screen, render.NewRect(x-4, y-4, 180, float64(len(lines)*lineHeight)+8), colorHUDBox)
	for i, line := range lines {
		ctx.Renderer.DrawText(screen, line, x, y+i*lineHeight, colorHUD, 1)
	}
}
