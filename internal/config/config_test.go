package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/vehicle"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, vehicle.DefaultCatalog(), catalog)
	assert.Equal(t, vehicle.NewModel(), cfg.Model())
	assert.Equal(t, race.SchemeKeyboard, cfg.ControlScheme())
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
}

func TestDecodeOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Decode(`
[window]
title = "Test"

[physics]
steer_floor = 0.2

[cars.car4]
accel_rate = 175.0
brake_rate = 260.0

[tracks.track2]
image = "oval.jpg"
start_heading = 180.0
`)
	require.NoError(t, err)

	assert.Equal(t, "Test", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width, "unset keys keep defaults")
	assert.Equal(t, 0.2, cfg.Model().SteerFloor)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	car4 := catalog[vehicle.Car4]
	assert.Equal(t, 175.0, car4.AccelRate)
	assert.Equal(t, 260.0, car4.BrakeRate)
	assert.Equal(t, vehicle.DefaultCatalog()[vehicle.Car4].MaxSpeed, car4.MaxSpeed)
	assert.Equal(t, vehicle.DefaultCatalog()[vehicle.Car1], catalog[vehicle.Car1])

	assert.Equal(t, "oval.jpg", cfg.TrackFiles()[race.Track2])
	assert.Equal(t, "track1.png", cfg.TrackFiles()[race.Track1])
	start := cfg.TrackStarts()[race.Track2]
	assert.Equal(t, 180.0, start.Heading)
	assert.Equal(t, race.DefaultStart.Position, start.Position)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad toml":          `[window`,
		"negative handling": "[cars.car2]\nhandling = -1.0\n",
		"unknown car":       "[cars.car9]\naccel_rate = 1.0\n",
		"unknown track":     "[tracks.monza]\nimage = \"m.png\"\n",
		"bad scheme":        "[controls]\nscheme = \"joystick\"\n",
		"floor above one":   "[physics]\nsteer_floor = 1.5\n",
		"zero width":        "[window]\nwidth = 0\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(data)
			assert.Error(t, err)
		})
	}
}

func TestDecodeControllerScheme(t *testing.T) {
	cfg, err := Decode("[controls]\nscheme = \"controller\"\n")
	require.NoError(t, err)
	assert.Equal(t, race.SchemeController, cfg.ControlScheme())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[assets]\ndir = \"/srv/raceday\"\n\n[cars.car1]\nmax_speed = 420.0\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/raceday", cfg.Assets.Dir)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 420.0, catalog.Resolve(vehicle.CarUnset).MaxSpeed)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName, "config.toml"), DefaultConfigPath())
}
