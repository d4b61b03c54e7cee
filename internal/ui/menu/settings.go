package menu

import (
	"image/color"

	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/render"
	"chosenoffset.com/raceday/internal/ui/racing"
)

var colorSettingsClear = color.RGBA{240, 230, 140, 255} // khaki

// Settings picks the control scheme.
type Settings struct {
	game.BaseScene

	keyboard   button
	controller button
	play       button
	back       button
	clicks     clicker
}

// NewSettings creates the settings screen.
func NewSettings() *Settings {
	return &Settings{
		keyboard:   button{label: "Keyboard", rect: render.NewRect(90, 160, 220, 50), scale: 2},
		controller: button{label: "Controller", rect: render.NewRect(330, 160, 220, 50), scale: 2},
		play:       button{label: "Play", rect: render.NewRect(210, 285, 220, 50), scale: 2},
		back:       button{label: "Back", rect: render.NewRect(210, 345, 220, 50), scale: 2},
	}
}

// OnEnter ignores a mouse press carried over from the previous screen.
func (s *Settings) OnEnter(ctx *game.Context) error {
	s.clicks.prime(ctx.Input)
	return nil
}

// HandleInput stores the clicked scheme in the game data. Play or Enter
// starts the race; Back and Escape return to the main menu.
func (s *Settings) HandleInput(ctx *game.Context) game.Switch {
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
	switch {
	case s.keyboard.hit(x, y):
		ctx.Data.SelectedControl = race.SchemeKeyboard
	case s.controller.hit(x, y):
		ctx.Data.SelectedControl = race.SchemeController
	case s.play.hit(x, y):
		return game.Push(racing.NewScene())
	case s.back.hit(x, y):
		return game.Pop()
	}
	return game.None()
}

// Draw renders the scheme choices with the active one highlighted.
func (s *Settings) Draw(screen render.Image, ctx *game.Context) {
	screen.Fill(colorSettingsClear)
	r := ctx.Renderer

	r.DrawText(screen, "Controls", 230, 90, colorText, 2.5)
	scheme := ctx.Data.SelectedControl
	s.keyboard.draw(screen, r, scheme == race.SchemeKeyboard)
	s.controller.draw(screen, r, scheme == race.SchemeController)
	s.play.draw(screen, r, false)
	s.back.draw(screen, r, false)
}
