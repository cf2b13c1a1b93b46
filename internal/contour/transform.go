package contour

import (
	"math"
	"strconv"
)

// Recenter shifts every pair so that the point (width/2, height/2) becomes
// the origin. width and height are the sprite's reference dimensions in the
// same pixel units as the pairs.
func Recenter(pairs []Pair, width, height float64) []Pair {
	shiftX := width / 2
	shiftY := height / 2

	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		out[i] = Pair{X: p.X - shiftX, Y: p.Y - shiftY}
	}
	return out
}

// Round2 rounds v to 2 decimal places. The result is the float64 nearest to
// the correctly rounded decimal value, so 2.675 (stored as 2.67499...) gives
// 2.67 and exact ties round half to even.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Build converts raw pixel-space pairs into a centered, scaled contour.
// Recentering happens before scaling and each component is rounded to 2
// decimals. The half-extent comes from the reference dimensions only.
//
// Parameters:
//   - pairs: Raw pairs in file order
//   - width, height: Reference sprite size in pixels
//   - scale: Multiplier from pixels to target units
func Build(pairs []Pair, width, height, scale float64) ObjectContour {
	shifted := Recenter(pairs, width, height)

	vertices := make([]Vector, len(shifted))
	for i, p := range shifted {
		vertices[i] = Vector{
			X: Round2(p.X * scale),
			Y: Round2(p.Y * scale),
		}
	}

	return ObjectContour{
		Vertices: vertices,
		HalfOfSides: Vector{
			X: Round2(width * scale / 2),
			Y: Round2(height * scale / 2),
		},
	}
}
