package assets

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/raceday/internal/render"
)

// SpriteDefinition defines a single sprite within an atlas
type SpriteDefinition struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "car1")
	AtlasX     int                    `json:"atlas_x"`    // X position in atlas (in cells)
	AtlasY     int                    `json:"atlas_y"`    // Y position in atlas (in cells)
	Properties map[string]interface{} `json:"properties"` // Custom properties (pivot, tint, etc.)
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string             `json:"name"`        // Atlas name
	ImagePath  string             `json:"image_path"`  // Path to the atlas image, relative to the config file
	CellWidth  int                `json:"cell_width"`  // Width of each cell in pixels
	CellHeight int                `json:"cell_height"` // Height of each cell in pixels
	Sprites    []SpriteDefinition `json:"sprites"`     // Array of sprite definitions
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config        *AtlasConfig
	Image         render.Image
	SpritesByName map[string]*SpriteDefinition // Quick lookup by name
}

// ParseAtlasConfig parses and validates an atlas configuration.
func ParseAtlasConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if config.CellWidth <= 0 || config.CellHeight <= 0 {
		return nil, fmt.Errorf("invalid cell dimensions: %dx%d", config.CellWidth, config.CellHeight)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}
	return &config, nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseAtlasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return NewAtlas(config, img), nil
}

// NewAtlas builds an atlas from an already parsed config and image.
func NewAtlas(config *AtlasConfig, img render.Image) *Atlas {
	spritesByName := make(map[string]*SpriteDefinition)
	for i := range config.Sprites {
		sprite := &config.Sprites[i]
		if sprite.Name != "" {
			spritesByName[sprite.Name] = sprite
		}
	}

	return &Atlas{
		Config:        config,
		Image:         img,
		SpritesByName: spritesByName,
	}
}

// GetSprite returns a sprite definition by name
func (a *Atlas) GetSprite(name string) (*SpriteDefinition, bool) {
	sprite, ok := a.SpritesByName[name]
	return sprite, ok
}

// SpriteRect returns the pixel rectangle of a sprite inside the atlas image.
func (a *Atlas) SpriteRect(sprite *SpriteDefinition) image.Rectangle {
	x := sprite.AtlasX * a.Config.CellWidth
	y := sprite.AtlasY * a.Config.CellHeight
	return image.Rect(x, y, x+a.Config.CellWidth, y+a.Config.CellHeight)
}

// GetSpriteSubImage returns the sub-image for a specific sprite
func (a *Atlas) GetSpriteSubImage(sprite *SpriteDefinition) render.Image {
	return a.Image.SubImage(a.SpriteRect(sprite))
}

// GetProperty retrieves a property from a sprite definition
func (sd *SpriteDefinition) GetProperty(key string) (interface{}, bool) {
	if sd.Properties == nil {
		return nil, false
	}
	val, ok := sd.Properties[key]
	return val, ok
}

// GetPropertyFloat retrieves a numeric property
func (sd *SpriteDefinition) GetPropertyFloat(key string, defaultVal float64) float64 {
	val, ok := sd.GetProperty(key)
	if !ok {
		return defaultVal
	}
	// JSON numbers are float64
	if floatVal, ok := val.(float64); ok {
		return floatVal
	}
	return defaultVal
}

// GetPropertyString retrieves a string property
func (sd *SpriteDefinition) GetPropertyString(key string, defaultVal string) string {
	val, ok := sd.GetProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}
