package assets

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raceday/internal/render/rendertest"
)

const carAtlasJSON = `{
	"name": "cars",
	"image_path": "cars.png",
	"cell_width": 32,
	"cell_height": 16,
	"sprites": [
		{"name": "car1", "atlas_x": 0, "atlas_y": 0, "properties": {"heading_offset": 90, "label": "Default"}},
		{"name": "car2", "atlas_x": 1, "atlas_y": 0},
		{"name": "car3", "atlas_x": 0, "atlas_y": 1},
		{"name": "car4", "atlas_x": 1, "atlas_y": 1}
	]
}`

func TestParseAtlasConfig(t *testing.T) {
	config, err := ParseAtlasConfig([]byte(carAtlasJSON))
	require.NoError(t, err)

	assert.Equal(t, "cars", config.Name)
	assert.Equal(t, 32, config.CellWidth)
	assert.Equal(t, 16, config.CellHeight)
	require.Len(t, config.Sprites, 4)
	assert.Equal(t, "car3", config.Sprites[2].Name)
	assert.Equal(t, 1, config.Sprites[2].AtlasY)
}

func TestParseAtlasConfigRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad json":     `{"name": `,
		"zero cells":   `{"image_path": "a.png", "cell_width": 0, "cell_height": 16}`,
		"no image":     `{"cell_width": 16, "cell_height": 16}`,
		"negative row": `{"image_path": "a.png", "cell_width": 16, "cell_height": -1}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAtlasConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestSpriteProperties(t *testing.T) {
	config, err := ParseAtlasConfig([]byte(carAtlasJSON))
	require.NoError(t, err)
	atlas := NewAtlas(config, rendertest.NewImage(64, 32))

	car1, ok := atlas.GetSprite("car1")
	require.True(t, ok)
	assert.Equal(t, 90.0, car1.GetPropertyFloat("heading_offset", 0))
	assert.Equal(t, "Default", car1.GetPropertyString("label", ""))
	assert.Equal(t, 1.5, car1.GetPropertyFloat("missing", 1.5))
	assert.Equal(t, "x", car1.GetPropertyString("heading_offset", "x"), "wrong type falls back")

	car2, ok := atlas.GetSprite("car2")
	require.True(t, ok)
	assert.Equal(t, 0.0, car2.GetPropertyFloat("heading_offset", 0))
}

func TestSpriteRect(t *testing.T) {
	config, err := ParseAtlasConfig([]byte(carAtlasJSON))
	require.NoError(t, err)
	atlas := NewAtlas(config, rendertest.NewImage(64, 32))

	car4, _ := atlas.GetSprite("car4")
	assert.Equal(t, image.Rect(32, 16, 64, 32), atlas.SpriteRect(car4))

	w, h := atlas.GetSpriteSubImage(car4).Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
}

func TestLoadAtlasResolvesImageRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "cars.json")
	require.NoError(t, os.WriteFile(configPath, []byte(carAtlasJSON), 0o644))

	loader := rendertest.NewLoader(map[string]*rendertest.Image{
		filepath.Join(dir, "cars.png"): rendertest.NewImage(64, 32),
	})

	atlas, err := LoadAtlas(configPath, loader)
	require.NoError(t, err)
	assert.Len(t, atlas.SpritesByName, 4)
	assert.Equal(t, []string{filepath.Join(dir, "cars.png")}, loader.Loaded)
}

func TestLoadAtlasErrors(t *testing.T) {
	dir := t.TempDir()
	loader := rendertest.NewLoader(nil)

	_, err := LoadAtlas(filepath.Join(dir, "missing.json"), loader)
	assert.Error(t, err)

	configPath := filepath.Join(dir, "cars.json")
	require.NoError(t, os.WriteFile(configPath, []byte(carAtlasJSON), 0o644))
	_, err = LoadAtlas(configPath, loader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cars.png")
}
