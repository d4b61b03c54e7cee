package race

import (
	"fmt"
	"strings"

	"chosenoffset.com/raceday/internal/vehicle"
)

// ControlScheme selects how raw input is decoded.
type ControlScheme int

const (
	SchemeUnset ControlScheme = iota // Treated as keyboard
	SchemeKeyboard
	SchemeController // Recognized, not implemented yet
)

// String returns the config key of the scheme.
func (c ControlScheme) String() string {
	switch c {
	case SchemeKeyboard:
		return "keyboard"
	case SchemeController:
		return "controller"
	default:
		return "unset"
	}
}

// ParseControlScheme parses "keyboard" or "controller". An empty string
// parses to SchemeUnset.
func ParseControlScheme(s string) (ControlScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset":
		return SchemeUnset, nil
	case "keyboard":
		return SchemeKeyboard, nil
	case "controller":
		return SchemeController, nil
	}
	return SchemeUnset, fmt.Errorf("unknown control scheme %q", s)
}

// InputSnapshot is the state of the four driving directions for one frame.
type InputSnapshot struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
	Scheme     ControlScheme
}

// Decode turns a snapshot into a control. When opposing directions are both
// held the first checked wins: accelerate over brake, left over right.
func Decode(in InputSnapshot) vehicle.Control {
	if in.Scheme == SchemeController {
		return vehicle.Neutral
	}

	var c vehicle.Control
	if in.Accelerate {
		c.Throttle = 1
	} else if in.Brake {
		c.Throttle = -1
	}

	if in.SteerLeft {
		c.Steer = -1
	} else if in.SteerRight {
		c.Steer = 1
	}
	return c
}
