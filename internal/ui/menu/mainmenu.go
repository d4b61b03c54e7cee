package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raceday/internal/assets"
	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/render"
)

// Extra width given to the menu background so the bricks reach the edges.
const backgroundStretch = 350.0

// Title image position; it bleeds slightly off the top.
const (
	titleX = 20
	titleY = -8
)

var colorMenuClear = color.RGBA{255, 255, 255, 255}

// MainMenu is the first scene: title, background, Play and Settings.
type MainMenu struct {
	game.BaseScene

	title      render.Image
	background render.Image

	play     button
	settings button
	clicks   clicker
}

// NewMainMenu creates the main menu.
func NewMainMenu() *MainMenu {
	return &MainMenu{
		play:     button{label: "Play", rect: render.NewRect(210, 285, 220, 50), scale: 2},
		settings: button{label: "Settings", rect: render.NewRect(210, 345, 220, 50), scale: 2},
	}
}

// OnEnter loads the title and background images.
func (m *MainMenu) OnEnter(ctx *game.Context) error {
	title, err := ctx.Assets.Image(assets.TitleImage)
	if err != nil {
		return fmt.Errorf("failed to load title image: %w", err)
	}
	background, err := ctx.Assets.Image(assets.MenuBackground)
	if err != nil {
		return fmt.Errorf("failed to load menu background image: %w", err)
	}
	m.title = title
	m.background = background
	m.clicks.prime(ctx.Input)
	return nil
}

// HandleInput pushes the select screen on Play or Enter, the settings screen
// on Settings, and quits on Escape.
func (m *MainMenu) HandleInput(ctx *game.Context) game.Switch {
	if ctx.Input.IsKeyJustPressed(render.KeyEscape) {
		return game.Quit()
	}
	if ctx.Input.IsKeyJustPressed(render.KeyEnter) {
		return game.Push(NewSelect())
	}

	x, y, ok := m.clicks.click(ctx.Input)
	if !ok {
		return game.None()
	}
	switch {
	case m.play.hit(x, y):
		return game.Push(NewSelect())
	case m.settings.hit(x, y):
		return game.Push(NewSettings())
	}
	return game.None()
}

// Draw renders the menu.
func (m *MainMenu) Draw(screen render.Image, ctx *game.Context) {
	screen.Fill(colorMenuClear)

	if tw, th := imageSize(m.background); tw > 0 && th > 0 {
		w, h := float64(ctx.Data.ScreenWidth), float64(ctx.Data.ScreenHeight)
		scale, _, _ := render.NewRect(0, 0, w, h).Fit(tw, th)
		destW := float64(tw)*scale + backgroundStretch
		destH := float64(th) * scale

		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Scale(destW/float64(tw), destH/float64(th))
		opts.GeoM.Translate((w-destW)/2, (h-destH)/2)
		screen.DrawImage(m.background, opts)
	}

	if m.title != nil {
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Translate(titleX, titleY)
		screen.DrawImage(m.title, opts)
	}

	m.play.draw(screen, ctx.Renderer, false)
	m.settings.draw(screen, ctx.Renderer, false)
}

func imageSize(img render.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	return img.Size()
}
