package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProfile is returned when a tuning profile cannot drive the model.
var ErrInvalidProfile = errors.New("invalid tuning profile")

// Profile is the immutable tuning of one car class.
type Profile struct {
	AccelRate float64 `toml:"accel_rate"` // Speed gained per second under throttle
	BrakeRate float64 `toml:"brake_rate"` // Speed lost per second under brake
	Drag      float64 `toml:"drag"`       // Fraction of speed lost per second while coasting
	MaxSpeed  float64 `toml:"max_speed"`  // Forward top speed; reverse is capped at half of it
	Handling  float64 `toml:"handling"`   // Degrees per second of full-authority steering
}

// Validate reports whether p can be used by Model.Step.
func (p Profile) Validate() error {
	switch {
	case p.AccelRate <= 0:
		return fmt.Errorf("%w: accel_rate must be positive, got %v", ErrInvalidProfile, p.AccelRate)
	case p.BrakeRate <= 0:
		return fmt.Errorf("%w: brake_rate must be positive, got %v", ErrInvalidProfile, p.BrakeRate)
	case p.Drag < 0:
		return fmt.Errorf("%w: drag must not be negative, got %v", ErrInvalidProfile, p.Drag)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive, got %v", ErrInvalidProfile, p.MaxSpeed)
	case p.Handling <= 0:
		return fmt.Errorf("%w: handling must be positive, got %v", ErrInvalidProfile, p.Handling)
	}
	return nil
}

// CarClass identifies an entry in the tuning catalog.
type CarClass int

const (
	CarUnset CarClass = iota
	Car1              // Default
	Car2              // HighInertia
	Car3              // Responsive
	Car4              // Stubborn
)

// CarClasses lists the selectable classes in menu order.
var CarClasses = []CarClass{Car1, Car2, Car3, Car4}

// String returns the config key of the class.
func (c CarClass) String() string {
	switch c {
	case Car1:
		return "car1"
	case Car2:
		return "car2"
	case Car3:
		return "car3"
	case Car4:
		return "car4"
	default:
		return "unset"
	}
}

// Label returns the display name of the class.
func (c CarClass) Label() string {
	switch c {
	case Car1:
		return "Default"
	case Car2:
		return "High Inertia"
	case Car3:
		return "Responsive"
	case Car4:
		return "Stubborn"
	default:
		return "Unset"
	}
}

// ParseCarClass parses a config key such as "car3". An empty string parses
// to CarUnset.
func ParseCarClass(s string) (CarClass, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" || key == "unset" {
		return CarUnset, nil
	}
	for _, c := range CarClasses {
		if c.String() == key {
			return c, nil
		}
	}
	return CarUnset, fmt.Errorf("unknown car class %q", s)
}

// Catalog maps car classes to tuning profiles. Catalogs are plain values and
// may be shared freely between sessions.
type Catalog map[CarClass]Profile

// DefaultCatalog returns the built-in tuning table.
func DefaultCatalog() Catalog {
	return Catalog{
		Car1: {AccelRate: 200, BrakeRate: 300, Drag: 4.0, MaxSpeed: 400, Handling: 120},
		Car2: {AccelRate: 120, BrakeRate: 180, Drag: 1.5, MaxSpeed: 450, Handling: 90},
		Car3: {AccelRate: 260, BrakeRate: 380, Drag: 5.0, MaxSpeed: 360, Handling: 170},
		Car4: {AccelRate: 150, BrakeRate: 220, Drag: 6.0, MaxSpeed: 380, Handling: 70},
	}
}

// Resolve returns the profile for class. Unset or unknown classes fall back
// to Car1.
func (c Catalog) Resolve(class CarClass) Profile {
	if p, ok := c[class]; ok && class != CarUnset {
		return p
	}
	if p, ok := c[Car1]; ok {
		return p
	}
	return DefaultCatalog()[Car1]
}

// Validate checks every entry of the catalog.
func (c Catalog) Validate() error {
	for _, class := range CarClasses {
		p, ok := c[class]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidProfile, class)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", class, err)
		}
	}
	return nil
}

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
