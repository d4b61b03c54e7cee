// Package assets resolves menu images, track images and car sprites from an
// asset directory and caches what it has loaded.
package assets

import (
	"fmt"
	"log"
	"path/filepath"

	"chosenoffset.com/raceday/internal/race"
	"chosenoffset.com/raceday/internal/render"
	"chosenoffset.com/raceday/internal/vehicle"
)

// Well-known asset file names.
const (
	TitleImage      = "title_image.png"
	MenuBackground  = "brickBackground.jpg"
	CarAtlasConfig  = "cars.json"
	DefaultTrackExt = ".png"
)

// Store loads images through a ResourceLoader. Loaded images are cached for
// the lifetime of the store.
type Store struct {
	dir        string
	loader     render.ResourceLoader
	trackFiles map[race.Track]string

	images   map[string]render.Image
	carAtlas *Atlas
}

// NewStore creates a store rooted at dir. trackFiles maps tracks to image
// file names relative to dir; tracks without an entry use "<track>.png".
func NewStore(dir string, loader render.ResourceLoader, trackFiles map[race.Track]string) *Store {
	return &Store{
		dir:        dir,
		loader:     loader,
		trackFiles: trackFiles,
		images:     make(map[string]render.Image),
	}
}

// Image loads (or returns the cached) image at name, relative to the asset dir.
func (s *Store) Image(name string) (render.Image, error) {
	if img, ok := s.images[name]; ok {
		return img, nil
	}

	path := filepath.Join(s.dir, name)
	img, err := s.loader.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	log.Printf("Loaded image: %s", path)
	s.images[name] = img
	return img, nil
}

// TrackFile returns the image file name for a track, or "" for TrackNone.
func (s *Store) TrackFile(t race.Track) string {
	if t == race.TrackNone {
		return ""
	}
	if name, ok := s.trackFiles[t]; ok && name != "" {
		return name
	}
	return t.String() + DefaultTrackExt
}

// Track returns the image of a track. TrackNone has no image and returns nil
// without an error; the race draws a solid background instead.
func (s *Store) Track(t race.Track) (render.Image, error) {
	name := s.TrackFile(t)
	if name == "" {
		return nil, nil
	}
	return s.Image(name)
}

// CarSprite returns the sprite of a car class from the car atlas. An unset
// class uses the Car1 sprite.
func (s *Store) CarSprite(c vehicle.CarClass) (render.Image, *SpriteDefinition, error) {
	if s.carAtlas == nil {
		atlas, err := LoadAtlas(filepath.Join(s.dir, CarAtlasConfig), s.loader)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Loaded car atlas: %s (%d sprites)", atlas.Config.Name, len(atlas.SpritesByName))
		s.carAtlas = atlas
	}

	if c == vehicle.CarUnset {
		c = vehicle.Car1
	}
	sprite, ok := s.carAtlas.GetSprite(c.String())
	if !ok {
		return nil, nil, fmt.Errorf("sprite not found: %s", c)
	}
	return s.carAtlas.GetSpriteSubImage(sprite), sprite, nil
}

// Release disposes every cached image.
func (s *Store) Release() {
	for name, img := range s.images {
		img.Dispose()
		delete(s.images, name)
	}
	if s.carAtlas != nil {
		s.carAtlas.Image.Dispose()
		s.carAtlas = nil
	}
}
