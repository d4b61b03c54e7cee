package menu

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raceday/internal/assets"
	"chosenoffset.com/raceday/internal/game"
	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/render"
	"chosenoffset.com/raceday/internal/render/rendertest"
	"chosenoffset.com/raceday/internal/ui/racing"
	"chosenoffset.com/raceday/internal/vehicle"
)

func newContext(t *testing.T) (*game.Context, *rendertest.Input, *rendertest.Renderer) {
	t.Helper()
	dir := t.TempDir()
	loader := rendertest.NewLoader(map[string]*rendertest.Image{
		filepath.Join(dir, assets.TitleImage):     rendertest.NewImage(600, 200),
		filepath.Join(dir, assets.MenuBackground): rendertest.NewImage(300, 300),
	})
	input := rendertest.NewInput()
	renderer := &rendertest.Renderer{}
	ctx := &game.Context{
		Data:     game.NewData(640, 480),
		Renderer: renderer,
		Input:    input,
		Assets:   assets.NewStore(dir, loader, nil),
		Model:    vehicle.NewModel(),
		Catalog:  vehicle.DefaultCatalog(),
	}
	return ctx, input, renderer
}

// click presses and releases the mouse at (x, y) and returns the switch the
// scene asked for on the press.
func click(ctx *game.Context, in *rendertest.Input, s game.Scene, x, y int) game.Switch {
	in.Click(x, y)
	sw := s.HandleInput(ctx)
	in.Release()
	s.HandleInput(ctx)
	return sw
}

func TestClickerReportsPressOnce(t *testing.T) {
	in := rendertest.NewInput()
	var c clicker

	in.Click(5, 7)
	x, y, ok := c.click(in)
	require.True(t, ok)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 7.0, y)

	_, _, ok = c.click(in)
	assert.False(t, ok, "held button is not a new click")

	in.Release()
	_, _, ok = c.click(in)
	assert.False(t, ok)
}

func TestClickerPrimeSkipsCarriedPress(t *testing.T) {
	in := rendertest.NewInput()
	in.Click(5, 7)

	var c clicker
	c.prime(in)
	_, _, ok := c.click(in)
	assert.False(t, ok)
}

func TestMainMenuLoadsImages(t *testing.T) {
	ctx, _, renderer := newContext(t)
	m := NewMainMenu()
	require.NoError(t, m.OnEnter(ctx))

	screen := rendertest.NewImage(640, 480)
	m.Draw(screen, ctx)
	assert.Equal(t, 2, screen.Draws)
	assert.Equal(t, []string{"Play", "Settings"}, renderer.Texts)
}

func TestMainMenuFailsWithoutImages(t *testing.T) {
	ctx, _, _ := newContext(t)
	ctx.Assets = assets.NewStore(t.TempDir(), rendertest.NewLoader(nil), nil)
	assert.Error(t, NewMainMenu().OnEnter(ctx))
}

func TestMainMenuButtons(t *testing.T) {
	ctx, in, _ := newContext(t)
	m := NewMainMenu()
	require.NoError(t, m.OnEnter(ctx))

	sw := click(ctx, in, m, 300, 300)
	assert.Equal(t, game.SwitchPush, sw.Kind)
	assert.IsType(t, &Select{}, sw.Scene)

	sw = click(ctx, in, m, 210, 395)
	assert.Equal(t, game.SwitchPush, sw.Kind)
	assert.IsType(t, &Settings{}, sw.Scene)

	sw = click(ctx, in, m, 100, 100)
	assert.Equal(t, game.SwitchNone, sw.Kind)

	in.Just[render.KeyEscape] = true
	assert.Equal(t, game.SwitchQuit, m.HandleInput(ctx).Kind)
}

func TestSelectRecordsChoices(t *testing.T) {
	ctx, in, _ := newContext(t)
	s := NewSelect()
	require.NoError(t, s.OnEnter(ctx))

	assert.Equal(t, game.SwitchNone, click(ctx, in, s, 340, 140).Kind)
	assert.Equal(t, race.Track3, ctx.Data.SelectedTrack)

	click(ctx, in, s, 150, 300)
	assert.Equal(t, vehicle.Car1, ctx.Data.SelectedCar)

	click(ctx, in, s, 549, 389)
	assert.Equal(t, vehicle.Car4, ctx.Data.SelectedCar)

	// The gap between buttons selects nothing.
	click(ctx, in, s, 205, 140)
	assert.Equal(t, race.Track3, ctx.Data.SelectedTrack)
}

func TestSelectPlayAndBack(t *testing.T) {
	ctx, in, _ := newContext(t)
	s := NewSelect()
	require.NoError(t, s.OnEnter(ctx))

	sw := click(ctx, in, s, 320, 440)
	assert.Equal(t, game.SwitchPush, sw.Kind)
	assert.IsType(t, &racing.Scene{}, sw.Scene)

	in.Just[render.KeyEscape] = true
	assert.Equal(t, game.SwitchPop, s.HandleInput(ctx).Kind)
}

func TestEnterStartsFromEveryMenu(t *testing.T) {
	ctx, in, _ := newContext(t)

	in.Just[render.KeyEnter] = true
	sw := NewMainMenu().HandleInput(ctx)
	assert.Equal(t, game.SwitchPush, sw.Kind)
	assert.IsType(t, &Select{}, sw.Scene)

	for _, s := range []game.Scene{NewSelect(), NewSettings()} {
		require.NoError(t, s.OnEnter(ctx))
		in.Just[render.KeyEnter] = true
		sw := s.HandleInput(ctx)
		assert.Equal(t, game.SwitchPush, sw.Kind)
		assert.IsType(t, &racing.Scene{}, sw.Scene)
	}
}

func TestSelectIgnoresPressFromMainMenu(t *testing.T) {
	ctx, in, _ := newContext(t)

	// The Play press on the main menu lands on the Car 2 button here.
	in.Click(250, 300)
	s := NewSelect()
	require.NoError(t, s.OnEnter(ctx))
	s.HandleInput(ctx)

	assert.Equal(t, vehicle.CarUnset, ctx.Data.SelectedCar)
}

func TestSelectHighlightsSelection(t *testing.T) {
	ctx, _, renderer := newContext(t)
	ctx.Data.SelectedTrack = race.Track2
	ctx.Data.SelectedCar = vehicle.Car4
	s := NewSelect()

	s.Draw(rendertest.NewImage(640, 480), ctx)

	// 9 fills plus one outline per selected button.
	assert.Len(t, renderer.Rects, 11)
	assert.Contains(t, renderer.Texts, "Track 2")
	assert.Contains(t, renderer.Texts, "Car 4")
}

func TestSettingsSelectsScheme(t *testing.T) {
	ctx, in, _ := newContext(t)
	s := NewSettings()
	require.NoError(t, s.OnEnter(ctx))

	click(ctx, in, s, 400, 180)
	assert.Equal(t, race.SchemeController, ctx.Data.SelectedControl)

	click(ctx, in, s, 100, 180)
	assert.Equal(t, race.SchemeKeyboard, ctx.Data.SelectedControl)

	sw := click(ctx, in, s, 300, 300)
	assert.Equal(t, game.SwitchPush, sw.Kind)
	assert.IsType(t, &racing.Scene{}, sw.Scene)

	assert.Equal(t, game.SwitchPop, click(ctx, in, s, 300, 360).Kind)
}

func TestMenuFlowThroughManager(t *testing.T) {
	ctx, in, _ := newContext(t)
	m, err := game.NewManager(ctx, NewMainMenu())
	require.NoError(t, err)

	in.Click(300, 300)
	require.NoError(t, m.Update())
	require.IsType(t, &Select{}, m.Top())

	// Still held on the next frame: no selection happens.
	require.NoError(t, m.Update())
	assert.Equal(t, vehicle.CarUnset, ctx.Data.SelectedCar)

	in.Release()
	require.NoError(t, m.Update())
	in.Just[render.KeyEscape] = true
	require.NoError(t, m.Update())
	require.IsType(t, &MainMenu{}, m.Top())

	in.Just[render.KeyEscape] = true
	assert.ErrorIs(t, m.Update(), render.ErrTerminated)
}
