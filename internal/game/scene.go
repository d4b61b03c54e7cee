package game

import "chosenoffset.com/raceday/internal/render"

// Scene is one screen of the game: a menu, the select screen, the race.
type Scene interface {
	// OnEnter is called before the scene becomes the top of the stack.
	// An error here is fatal: it usually means an asset failed to load.
	OnEnter(ctx *Context) error

	// HandleInput reads this frame's input and may request a transition.
	HandleInput(ctx *Context) Switch

	// Update advances the scene by dt seconds and may request a transition.
	Update(dt float64, ctx *Context) Switch

	// Draw renders the scene.
	Draw(screen render.Image, ctx *Context)

	// OnExit is called after the scene is removed from the stack.
	OnExit(ctx *Context)
}

// BaseScene provides no-op implementations of every Scene method except Draw.
type BaseScene struct{}

func (BaseScene) OnEnter(*Context) error { return nil }

func (BaseScene) HandleInput(*Context) Switch { return None() }

func (BaseScene) Update(float64, *Context) Switch { return None() }

func (BaseScene) OnExit(*Context) {}

// SwitchKind enumerates scene stack operations.
type SwitchKind int

const (
	SwitchNone SwitchKind = iota
	SwitchPush
	SwitchReplace
	SwitchPop
	SwitchRoot
	SwitchQuit
)

func (k SwitchKind) String() string {
	switch k {
	case SwitchPush:
		return "push"
	case SwitchReplace:
		return "replace"
	case SwitchPop:
		return "pop"
	case SwitchRoot:
		return "root"
	case SwitchQuit:
		return "quit"
	default:
		return "none"
	}
}

// Switch is a scene transition requested by a scene.
type Switch struct {
	Kind  SwitchKind
	Scene Scene // Set for push and replace
}

// None keeps the current scene.
func None() Switch { return Switch{Kind: SwitchNone} }

// Push enters s on top of the current scene.
func Push(s Scene) Switch { return Switch{Kind: SwitchPush, Scene: s} }

// Replace exits the current scene and enters s in its place.
func Replace(s Scene) Switch { return Switch{Kind: SwitchReplace, Scene: s} }

// Pop exits the current scene and resumes the one below.
func Pop() Switch { return Switch{Kind: SwitchPop} }

// Root exits every scene above the bottom one, e.g. back to the main menu.
func Root() Switch { return Switch{Kind: SwitchRoot} }

// Quit ends the game.
func Quit() Switch { return Switch{Kind: SwitchQuit} }
