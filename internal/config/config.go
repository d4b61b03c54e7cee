// Package config provides the game configuration: window, assets, controls,
// vehicle physics and the car tuning catalog. Values are loaded from a TOML
// file on top of built-in defaults, so every field is optional.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/vehicle"
)

// Config holds all settings for a game run
type Config struct {
	Window   WindowConfig               `toml:"window"`
	Assets   AssetsConfig               `toml:"assets"`
	Controls ControlsConfig             `toml:"controls"`
	Physics  PhysicsConfig              `toml:"physics"`
	Cars     map[string]vehicle.Profile `toml:"-"` // Keyed by "car1".."car4", see overrides
	Tracks   map[string]TrackConfig     `toml:"-"` // Keyed by "track1".."track4", see overrides
}

// WindowConfig defines the logical screen and window title
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// AssetsConfig defines where images are loaded from
type AssetsConfig struct {
	Dir string `toml:"dir"`
}

// ControlsConfig defines the default control scheme
type ControlsConfig struct {
	Scheme string `toml:"scheme"` // "keyboard" or "controller"
}

// PhysicsConfig defines model-wide tunables
type PhysicsConfig struct {
	SteerFloor float64 `toml:"steer_floor"` // Minimum steering authority at rest (0-1)
}

// TrackConfig defines one track's image and starting grid
type TrackConfig struct {
	Image        string  `toml:"image"`         // File name inside the asset dir
	StartX       float64 `toml:"start_x"`       // Car start position
	StartY       float64 `toml:"start_y"`
	StartHeading float64 `toml:"start_heading"` // Degrees
}

// DefaultConfig returns the settings of the stock game
func DefaultConfig() *Config {
	cars := make(map[string]vehicle.Profile)
	for class, p := range vehicle.DefaultCatalog() {
		cars[class.String()] = p
	}

	tracks := make(map[string]TrackConfig)
	for _, t := range race.Tracks {
		tracks[t.String()] = TrackConfig{
			Image:        t.String() + ".png",
			StartX:       race.DefaultStart.Position.X,
			StartY:       race.DefaultStart.Position.Y,
			StartHeading: race.DefaultStart.Heading,
		}
	}

	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "WD40: Rust-Off",
		},
		Assets: AssetsConfig{
			Dir: "Assets",
		},
		Controls: ControlsConfig{
			Scheme: race.SchemeKeyboard.String(),
		},
		Physics: PhysicsConfig{
			SteerFloor: vehicle.DefaultSteerFloor,
		},
		Cars:   cars,
		Tracks: tracks,
	}
}

// LoadConfig loads a config from a TOML file. A missing file yields the
// defaults; a present file overrides only the keys it sets.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	config := DefaultConfig() // Start with defaults
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			log.Printf("No config at %s, using defaults", path)
			return config, nil
		}
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	err := config.decode(func(v any) error {
		_, err := toml.DecodeFile(path, v)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	log.Printf("Loaded config: %s", path)
	return config, nil
}

// Decode parses TOML text on top of the defaults.
func Decode(data string) (*Config, error) {
	config := DefaultConfig()
	err := config.decode(func(v any) error {
		_, err := toml.Decode(data, v)
		return err
	})
	if err != nil {
		return nil, err
	}
	return config, nil
}

// profileOverride mirrors vehicle.Profile with optional fields.
type profileOverride struct {
	AccelRate *float64 `toml:"accel_rate"`
	BrakeRate *float64 `toml:"brake_rate"`
	Drag      *float64 `toml:"drag"`
	MaxSpeed  *float64 `toml:"max_speed"`
	Handling  *float64 `toml:"handling"`
}

// trackOverride mirrors TrackConfig with optional fields.
type trackOverride struct {
	Image        *string  `toml:"image"`
	StartX       *float64 `toml:"start_x"`
	StartY       *float64 `toml:"start_y"`
	StartHeading *float64 `toml:"start_heading"`
}

// overrides holds the per-car and per-track tables. The TOML decoder
// replaces map entries wholesale, so these are decoded separately and merged
// field by field.
type overrides struct {
	Cars   map[string]profileOverride `toml:"cars"`
	Tracks map[string]trackOverride   `toml:"tracks"`
}

func (c *Config) decode(decode func(v any) error) error {
	if err := decode(c); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	var ov overrides
	if err := decode(&ov); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.merge(ov); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) merge(ov overrides) error {
	for key, o := range ov.Cars {
		class, err := vehicle.ParseCarClass(key)
		if err != nil || class == vehicle.CarUnset {
			return fmt.Errorf("unknown car class %q", key)
		}
		p := c.Cars[class.String()]
		setFloat(&p.AccelRate, o.AccelRate)
		setFloat(&p.BrakeRate, o.BrakeRate)
		setFloat(&p.Drag, o.Drag)
		setFloat(&p.MaxSpeed, o.MaxSpeed)
		setFloat(&p.Handling, o.Handling)
		c.Cars[class.String()] = p
	}

	for key, o := range ov.Tracks {
		t, err := race.ParseTrack(key)
		if err != nil || t == race.TrackNone {
			return fmt.Errorf("unknown track %q", key)
		}
		tc := c.Tracks[t.String()]
		if o.Image != nil {
			tc.Image = *o.Image
		}
		setFloat(&tc.StartX, o.StartX)
		setFloat(&tc.StartY, o.StartY)
		setFloat(&tc.StartHeading, o.StartHeading)
		c.Tracks[t.String()] = tc
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks that the config can run a game.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.SteerFloor < 0 || c.Physics.SteerFloor > 1 {
		return fmt.Errorf("steer_floor must be within [0, 1], got %v", c.Physics.SteerFloor)
	}
	if _, err := race.ParseControlScheme(c.Controls.Scheme); err != nil {
		return err
	}
	for key := range c.Cars {
		if _, err := vehicle.ParseCarClass(key); err != nil {
			return err
		}
	}
	for key := range c.Tracks {
		if _, err := race.ParseTrack(key); err != nil {
			return err
		}
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	return catalog.Validate()
}

// Catalog builds the tuning catalog from the [cars] tables.
func (c *Config) Catalog() (vehicle.Catalog, error) {
	catalog := make(vehicle.Catalog, len(c.Cars))
	for key, p := range c.Cars {
		class, err := vehicle.ParseCarClass(key)
		if err != nil {
			return nil, err
		}
		if class == vehicle.CarUnset {
			continue
		}
		catalog[class] = p
	}
	return catalog, nil
}

// Model returns the vehicle model configured by [physics].
func (c *Config) Model() vehicle.Model {
	return vehicle.Model{SteerFloor: c.Physics.SteerFloor}
}

// ControlScheme returns the configured control scheme.
func (c *Config) ControlScheme() race.ControlScheme {
	scheme, err := race.ParseControlScheme(c.Controls.Scheme)
	if err != nil {
		return race.SchemeUnset
	}
	return scheme
}

// TrackStarts returns the start pose of every configured track.
func (c *Config) TrackStarts() map[race.Track]race.Pose {
	starts := make(map[race.Track]race.Pose, len(c.Tracks))
	for key, tc := range c.Tracks {
		t, err := race.ParseTrack(key)
		if err != nil || t == race.TrackNone {
			continue
		}
		starts[t] = race.Pose{
			Position: vehicle.Vec2{X: tc.StartX, Y: tc.StartY},
			Heading:  tc.StartHeading,
		}
	}
	return starts
}

// TrackFiles returns the image file of every configured track.
func (c *Config) TrackFiles() map[race.Track]string {
	files := make(map[race.Track]string, len(c.Tracks))
	for key, tc := range c.Tracks {
		t, err := race.ParseTrack(key)
		if err != nil || t == race.TrackNone {
			continue
		}
		files[t] = tc.Image
	}
	return files
}
