package racing

import (
	"image/color"

	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/render"
)

var (
	colorDim   = color.RGBA{0, 0, 0, 140}
	colorTitle = color.RGBA{255, 255, 255, 255}
)

// Pause is drawn over a race. The race below is frozen because only the top
// scene is updated.
type Pause struct {
	game.BaseScene
	race *Scene
}

// NewPause creates a pause overlay for race.
func NewPause(race *Scene) *Pause {
	return &Pause{race: race}
}

// HandleInput resumes on P or Escape and returns to the main menu on Q.
func (p *Pause) HandleInput(ctx *game.Context) game.Switch {
	switch {
	case ctx.Input.IsKeyJustPressed(render.KeyP), ctx.Input.IsKeyJustPressed(render.KeyEscape):
		return game.Pop()
	case ctx.Input.IsKeyJustPressed(render.KeyQ):
		return game.Root()
	}
	return game.None()
}

// Draw renders the frozen race under a dimmed overlay.
func (p *Pause) Draw(screen render.Image, ctx *game.Context) {
	if p.race != nil {
		p.race.Draw(screen, ctx)
	}

	w, h := float64(ctx.Data.ScreenWidth), float64(ctx.Data.ScreenHeight)
	ctx.Renderer.FillRect(screen, render.NewRect(0, 0, w, h), colorDim)

	drawCentered(screen, ctx.Renderer, "PAUSED", h/2-40, 3)
	drawCentered(screen, ctx.Renderer, "P: resume   Q: main menu", h/2+20, 1)
}

func drawCentered(screen render.Image, r render.Renderer, text string, y, scale float64) {
	sw, _ := screen.Size()
	w, _ := r.MeasureText(text, scale)
	r.DrawText(screen, text, (sw-w)/2, int(y), colorTitle, scale)
}
