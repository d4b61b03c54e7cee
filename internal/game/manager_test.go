package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raceday/internal/render"
)

// scriptedScene returns queued switches and records its lifecycle.
type scriptedScene struct {
	name     string
	log      *[]string
	inputs   []Switch
	updates  []Switch
	dts      []float64
	enterErr error
}

func (s *scriptedScene) OnEnter(*Context) error {
	*s.log = append(*s.log, "enter "+s.name)
	return s.enterErr
}

func (s *scriptedScene) HandleInput(*Context) Switch {
	if len(s.inputs) == 0 {
		return None()
	}
	sw := s.inputs[0]
	s.inputs = s.inputs[1:]
	return sw
}

func (s *scriptedScene) Update(dt float64, _ *Context) Switch {
	s.dts = append(s.dts, dt)
	if len(s.updates) == 0 {
		return None()
	}
	sw := s.updates[0]
	s.updates = s.updates[1:]
	return sw
}

func (s *scriptedScene) Draw(render.Image, *Context) {
	*s.log = append(*s.log, "draw "+s.name)
}

func (s *scriptedScene) OnExit(*Context) {
	*s.log = append(*s.log, "exit "+s.name)
}

func newScene(name string, log *[]string) *scriptedScene {
	return &scriptedScene{name: name, log: log}
}

func newTestManager(t *testing.T, initial Scene) *Manager {
	t.Helper()
	m, err := NewManager(&Context{Data: NewData(640, 480)}, initial)
	require.NoError(t, err)
	return m
}

func TestManagerEntersInitialScene(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	m := newTestManager(t, menu)

	assert.Equal(t, []string{"enter menu"}, events)
	assert.Equal(t, Scene(menu), m.Top())
	assert.False(t, m.ShouldQuit())
}

func TestManagerPushAndPop(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	sel := newScene("select", &events)
	menu.inputs = []Switch{Push(sel)}
	// The pushed scene is updated in the frame it is pushed.
	sel.updates = []Switch{None(), Pop()}

	m := newTestManager(t, menu)
	require.NoError(t, m.Update())
	assert.Equal(t, 2, m.Depth())
	assert.Equal(t, Scene(sel), m.Top())

	require.NoError(t, m.Update())
	assert.Equal(t, 1, m.Depth())
	assert.Equal(t, Scene(menu), m.Top())
	assert.Equal(t, []string{"enter menu", "enter select", "exit select"}, events)
}

func TestManagerInputSwitchIsAppliedBeforeUpdate(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	sel := newScene("select", &events)
	menu.inputs = []Switch{Push(sel)}

	m := newTestManager(t, menu)
	require.NoError(t, m.Update())

	// The pushed scene receives the update of the same frame.
	assert.Len(t, sel.dts, 1)
	assert.Empty(t, menu.dts)
}

func TestManagerReplace(t *testing.T) {
	var events []string
	a := newScene("a", &events)
	b := newScene("b", &events)
	a.updates = []Switch{Replace(b)}

	m := newTestManager(t, a)
	require.NoError(t, m.Update())

	assert.Equal(t, 1, m.Depth())
	assert.Equal(t, Scene(b), m.Top())
	assert.Equal(t, []string{"enter a", "exit a", "enter b"}, events)
}

func TestManagerRootUnwindsToBottomScene(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	sel := newScene("select", &events)
	race := newScene("race", &events)
	pause := newScene("pause", &events)
	menu.inputs = []Switch{Push(sel)}
	sel.inputs = []Switch{Push(race)}
	race.inputs = []Switch{Push(pause)}
	pause.inputs = []Switch{Root()}

	m := newTestManager(t, menu)
	for i := 0; i < 4; i++ {
		require.NoError(t, m.Update())
	}

	assert.Equal(t, 1, m.Depth())
	assert.Equal(t, Scene(menu), m.Top())
	assert.Equal(t, []string{
		"enter menu", "enter select", "enter race", "enter pause",
		"exit pause", "exit race", "exit select",
	}, events)
	assert.False(t, m.ShouldQuit())
}

func TestManagerQuit(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	menu.inputs = []Switch{Quit()}

	m := newTestManager(t, menu)
	err := m.Update()
	assert.ErrorIs(t, err, render.ErrTerminated)
	assert.True(t, m.ShouldQuit())
	assert.Equal(t, 1, m.Depth(), "quit does not unwind the stack")
}

func TestManagerPopLastSceneQuits(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	menu.updates = []Switch{Pop()}

	m := newTestManager(t, menu)
	assert.ErrorIs(t, m.Update(), render.ErrTerminated)
	assert.Nil(t, m.Top())

	// Drawing an empty stack is a no-op.
	m.Draw(nil)
	assert.Equal(t, []string{"enter menu", "exit menu"}, events)
}

func TestManagerEnterErrorIsFatal(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	race := newScene("race", &events)
	race.enterErr = errors.New("missing track image")
	menu.inputs = []Switch{Push(race)}

	m := newTestManager(t, menu)
	err := m.Update()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing track image")
	assert.Equal(t, Scene(menu), m.Top())
}

func TestNewManagerFailsWhenInitialSceneFails(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	menu.enterErr = errors.New("no title image")

	_, err := NewManager(&Context{Data: NewData(640, 480)}, menu)
	assert.Error(t, err)
}

func TestManagerMeasuresFrameTime(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	m := newTestManager(t, menu)

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	m.SetClock(func() time.Time { return now })

	require.NoError(t, m.Update())
	now = now.Add(16 * time.Millisecond)
	require.NoError(t, m.Update())
	now = now.Add(50 * time.Millisecond)
	require.NoError(t, m.Update())

	require.Len(t, menu.dts, 3)
	assert.Equal(t, 0.0, menu.dts[0])
	assert.InDelta(t, 0.016, menu.dts[1], 1e-9)
	assert.InDelta(t, 0.050, menu.dts[2], 1e-9)
}

func TestManagerDrawsTopSceneOnly(t *testing.T) {
	var events []string
	menu := newScene("menu", &events)
	sel := newScene("select", &events)
	menu.inputs = []Switch{Push(sel)}

	m := newTestManager(t, menu)
	require.NoError(t, m.Update())
	events = events[:0]

	m.Draw(nil)
	assert.Equal(t, []string{"draw select"}, events)
}

func TestManagerLayoutIsFixed(t *testing.T) {
	var events []string
	m := newTestManager(t, newScene("menu", &events))
	w, h := m.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestSwitchKindString(t *testing.T) {
	assert.Equal(t, "push", Push(nil).Kind.String())
	assert.Equal(t, "none", None().Kind.String())
	assert.Equal(t, "quit", Quit().Kind.String())
	assert.Equal(t, "root", Root().Kind.String())
}
