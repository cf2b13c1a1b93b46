// Package contour provides the data structures, file parsing and collision
// math for sprite contours: closed polygons approximating the outline of a
// sprite, paired with the half-extent of the sprite's bounding box.
package contour

// Pair is one raw coordinate pair as read from a contour file, in the
// source image's pixel space (origin at the top-left corner).
type Pair struct {
	X float64
	Y float64
}

// Vector is a 2D point or displacement in target units.
type Vector struct {
	X float64
	Y float64
}

// Add returns v + rhs.
func (v Vector) Add(rhs Vector) Vector {
	return Vector{X: v.X + rhs.X, Y: v.Y + rhs.Y}
}

// Sub returns v - rhs.
func (v Vector) Sub(rhs Vector) Vector {
	return Vector{X: v.X - rhs.X, Y: v.Y - rhs.Y}
}

// Mul scales v by f.
func (v Vector) Mul(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Div divides both components of v by f.
func (v Vector) Div(f float64) Vector {
	return Vector{X: v.X / f, Y: v.Y / f}
}

// ObjectContour is a sprite outline used for collision detection.
// Vertices are centered on the sprite's midpoint; the polygon may be convex
// or not. HalfOfSides is half the size of the sprite's outer rectangle.
type ObjectContour struct {
	Vertices    []Vector
	HalfOfSides Vector
}

// UpdateForDPI returns a copy of c with every vertex and the half-extent
// multiplied by factor. The receiver is left untouched.
func (c ObjectContour) UpdateForDPI(factor float64) ObjectContour {
	out := ObjectContour{
		Vertices:    make([]Vector, len(c.Vertices)),
		HalfOfSides: c.HalfOfSides.Mul(factor),
	}
	for i, v := range c.Vertices {
		out.Vertices[i] = v.Mul(factor)
	}
	return out
}
