package render

import "image"

// Scratch is an off-screen image reused between draws. It grows to the
// largest size asked for and is never shrunk.
type Scratch struct {
	newImage func(width, height int) Image
	img      Image
}

// NewScratch creates a scratch image that allocates through newImage.
func NewScratch(newImage func(width, height int) Image) *Scratch {
	return &Scratch{newImage: newImage}
}

// Region returns a cleared width x height region at the origin of the
// scratch image.
func (s *Scratch) Region(width, height int) Image {
	if s.img != nil {
		w, h := s.img.Size()
		if w < width || h < height {
			s.img.Dispose()
			s.img = s.newImage(max(w, width), max(h, height))
		}
	} else {
		s.img = s.newImage(width, height)
	}

	region := s.img.SubImage(image.Rect(0, 0, width, height))
	region.Clear()
	return region
}
