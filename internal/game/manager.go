package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/raceday/internal/render"
)

// Manager runs the scene stack. It implements render.Game, so the engine
// drives it directly: input, then update, then draw, once per frame.
type Manager struct {
	ctx    *Context
	scenes []Scene
	quit   bool

	now      func() time.Time
	lastTick time.Time
}

// NewManager creates a manager and enters the initial scene.
func NewManager(ctx *Context, initial Scene) (*Manager, error) {
	m := &Manager{
		ctx: ctx,
		now: time.Now,
	}
	if err := initial.OnEnter(ctx); err != nil {
		return nil, fmt.Errorf("failed to enter initial scene: %w", err)
	}
	m.scenes = append(m.scenes, initial)
	return m, nil
}

// SetClock replaces the wall clock used to measure frame time.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
	m.lastTick = time.Time{}
}

// Update handles input and advances the top scene by the wall-clock time
// since the previous call. The first call uses a zero dt.
func (m *Manager) Update() error {
	now := m.now()
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if scene := m.Top(); scene != nil {
		if err := m.apply(scene.HandleInput(m.ctx)); err != nil {
			return err
		}
	}

	if scene := m.Top(); scene != nil {
		if err := m.apply(scene.Update(dt, m.ctx)); err != nil {
			return err
		}
	}

	if m.ShouldQuit() {
		return render.ErrTerminated
	}
	return nil
}

// Draw draws the top scene.
func (m *Manager) Draw(screen render.Image) {
	if scene := m.Top(); scene != nil {
		scene.Draw(screen, m.ctx)
	}
}

// Layout keeps the logical screen size fixed; the engine scales it to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ctx.Data.ScreenWidth, m.ctx.Data.ScreenHeight
}

// Top returns the active scene, or nil when the stack is empty.
func (m *Manager) Top() Scene {
	if len(m.scenes) == 0 {
		return nil
	}
	return m.scenes[len(m.scenes)-1]
}

// Depth returns the number of scenes on the stack.
func (m *Manager) Depth() int {
	return len(m.scenes)
}

// ShouldQuit reports whether the game loop should stop.
func (m *Manager) ShouldQuit() bool {
	return m.quit || len(m.scenes) == 0
}

// apply performs a requested transition.
func (m *Manager) apply(sw Switch) error {
	switch sw.Kind {
	case SwitchNone:
		return nil
	case SwitchPush:
		if err := sw.Scene.OnEnter(m.ctx); err != nil {
			return fmt.Errorf("failed to enter scene: %w", err)
		}
		m.scenes = append(m.scenes, sw.Scene)
	case SwitchReplace:
		m.popTop()
		if err := sw.Scene.OnEnter(m.ctx); err != nil {
			return fmt.Errorf("failed to enter scene: %w", err)
		}
		m.scenes = append(m.scenes, sw.Scene)
	case SwitchPop:
		m.popTop()
	case SwitchRoot:
		for len(m.scenes) > 1 {
			m.popTop()
		}
	case SwitchQuit:
		m.quit = true
	}
	log.Printf("Scene %s (stack depth %d)", sw.Kind, len(m.scenes))
	return nil
}

func (m *Manager) popTop() {
	if len(m.scenes) == 0 {
		return
	}
	top := m.scenes[len(m.scenes)-1]
	m.scenes[len(m.scenes)-1] = nil
	m.scenes = m.scenes[:len(m.scenes)-1]
	top.OnExit(m.ctx)
}
