// Package geometry provides the size and constraint value objects used by
// the widget layout system.
package geometry

import "math"

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// WidthToMax returns a copy with the width raised to at least other's width.
func (s Size) WidthToMax(other Size) Size {
	s.Width = math.Max(s.Width, other.Width)
	return s
}

// HeightToMax returns a copy with the height raised to at least other's height.
func (s Size) HeightToMax(other Size) Size {
	s.Height = math.Max(s.Height, other.Height)
	return s
}

// AddWidth returns a copy with other's width added.
func (s Size) AddWidth(other Size) Size {
	s.Width += other.Width
	return s
}

// AddHeight returns a copy with other's height added.
func (s Size) AddHeight(other Size) Size {
	s.Height += other.Height
	return s
}

// Constraints describes a widget's layout demand: the smallest size it can
// work with and the size it would prefer. Preferred is never smaller than
// Minimum in either dimension.
type Constraints struct {
	Minimum   Size
	Preferred Size
}

// NewConstraints builds constraints from a minimum size, with the preferred
// size raised to cover the minimum.
func NewConstraints(minimum, preferred Size) Constraints {
	return Constraints{
		Minimum:   minimum,
		Preferred: preferred.WidthToMax(minimum).HeightToMax(minimum),
	}
}

// IsZero reports whether the constraints carry no layout demand.
func (c Constraints) IsZero() bool {
	return c.Minimum.IsZero() && c.Preferred.IsZero()
}

// WidthToMax returns a copy with both widths raised to at least other's.
func (c Constraints) WidthToMax(other Constraints) Constraints {
	c.Minimum = c.Minimum.WidthToMax(other.Minimum)
	c.Preferred = c.Preferred.WidthToMax(other.Preferred)
	return c
}

// HeightToMax returns a copy with both heights raised to at least other's.
func (c Constraints) HeightToMax(other Constraints) Constraints {
	c.Minimum = c.Minimum.HeightToMax(other.Minimum)
	c.Preferred = c.Preferred.HeightToMax(other.Preferred)
	return c
}

// AddWidth returns a copy with other's widths added.
func (c Constraints) AddWidth(other Constraints) Constraints {
	c.Minimum = c.Minimum.AddWidth(other.Minimum)
	c.Preferred = c.Preferred.AddWidth(other.Preferred)
	return c
}

// AddHeight returns a copy with other's heights added.
func (c Constraints) AddHeight(other Constraints) Constraints {
	c.Minimum = c.Minimum.AddHeight(other.Minimum)
	c.Preferred = c.Preferred.AddHeight(other.Preferred)
	return c
}
