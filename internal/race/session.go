// Package race drives one race: it decodes driver input, steps the vehicle
// model every frame and keeps the race clock.
package race

import (
	"fmt"
	"math"
	"strings"

	"chosenoffset.com/raceday/internal/vehicle"
)

// StartThreshold is the absolute speed the car must exceed before the race
// clock starts.
const StartThreshold = 1.0

// Track identifies one of the selectable tracks.
type Track int

const (
	TrackNone Track = iota // No track image, solid background
	Track1
	Track2
	Track3
	Track4
)

// Tracks lists the selectable tracks in menu order.
var Tracks = []Track{Track1, Track2, Track3, Track4}

// String returns the config key of the track.
func (t Track) String() string {
	switch t {
	case Track1:
		return "track1"
	case Track2:
		return "track2"
	case Track3:
		return "track3"
	case Track4:
		return "track4"
	default:
		return "none"
	}
}

// ParseTrack parses a config key such as "track2". An empty string parses to
// TrackNone.
func ParseTrack(s string) (Track, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" || key == "none" {
		return TrackNone, nil
	}
	for _, t := range Tracks {
		if t.String() == key {
			return t, nil
		}
	}
	return TrackNone, fmt.Errorf("unknown track %q", s)
}

// Pose is where and how a car is placed on the grid.
type Pose struct {
	Position vehicle.Vec2
	Heading  float64
}

// DefaultStart is the grid pose used when a track has none configured.
var DefaultStart = Pose{Position: vehicle.Vec2{X: 100, Y: 100}, Heading: 90}

// Session owns the vehicle state and the race clock of one race.
type Session struct {
	model   vehicle.Model
	catalog vehicle.Catalog
	starts  map[Track]Pose

	car     vehicle.CarClass
	track   Track
	profile vehicle.Profile
	state   vehicle.State
	control vehicle.Control

	elapsed float64
	started bool
}

// NewSession creates a session that resolves cars through catalog and
// integrates motion with model. starts may be nil. The session keeps its own
// copy of catalog.
func NewSession(model vehicle.Model, catalog vehicle.Catalog, starts map[Track]Pose) *Session {
	catalog = catalog.Clone()
	return &Session{
		model:   model,
		catalog: catalog,
		starts:  starts,
		profile: catalog.Resolve(vehicle.CarUnset),
	}
}

// Enter prepares a new race. An unset car falls back to the default profile.
func (s *Session) Enter(car vehicle.CarClass, track Track) {
	s.elapsed = 0
	s.started = false
	s.control = vehicle.Neutral

	s.car = car
	if car == vehicle.CarUnset {
		s.car = vehicle.Car1
	}
	s.track = track
	s.profile = s.catalog.Resolve(car)

	start, ok := s.starts[track]
	if !ok {
		start = DefaultStart
	}
	s.state = vehicle.State{Position: start.Position, Heading: start.Heading}
}

// HandleInput decodes a snapshot and keeps it for the next Update.
func (s *Session) HandleInput(in InputSnapshot) vehicle.Control {
	s.control = Decode(in)
	return s.control
}

// Update advances the race by dt seconds.
func (s *Session) Update(dt float64) {
	if !s.started && math.Abs(s.state.Speed) > StartThreshold {
		s.started = true
	}
	if s.started {
		s.elapsed += dt
	}
	s.state = s.model.Step(s.state, s.profile, s.control, dt)
}

// State returns the current vehicle state.
func (s *Session) State() vehicle.State { return s.state }

// Elapsed returns the race clock in seconds.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Started reports whether the race clock is running.
func (s *Session) Started() bool { return s.started }

// Car returns the resolved car class.
func (s *Session) Car() vehicle.CarClass { return s.car }

// Track returns the selected track.
func (s *Session) Track() Track { return s.track }

// Profile returns the active tuning profile.
func (s *Session) Profile() vehicle.Profile { return s.profile }

// Control returns the control applied on the next Update.
func (s *Session) Control() vehicle.Control { return s.control }
