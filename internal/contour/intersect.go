package contour

import "math"

// Clockwise reports whether a, b, c are in clockwise order, i.e. the slope
// of AB is greater than the slope of AC.
func Clockwise(a, b, c Vector) bool {
	return (b.Y-a.Y)*(c.X-a.X) > (c.Y-a.Y)*(b.X-a.X)
}

// SegmentsIntersect reports whether segment AB crosses segment CD.
// Two segments cross when each one separates the endpoints of the other.
// Collinear and touching-endpoint cases are not reported.
func SegmentsIntersect(a, b, c, d Vector) bool {
	return Clockwise(a, c, d) != Clockwise(b, c, d) && Clockwise(a, b, c) != Clockwise(a, b, d)
}

// Intersect reports whether two contours placed at the given centers overlap.
//
// The half-extents are compared first; when the centers are further apart
// than the summed half-extents on either axis there is no collision. Otherwise
// every edge of lhs, including the closing edge, is tested against every edge
// of rhs. A contour fully inside the other without crossing edges is not
// reported.
func Intersect(lhs, rhs ObjectContour, lhsCenter, rhsCenter Vector) bool {
	distance := rhsCenter.Sub(lhsCenter)

	if math.Abs(distance.X) > lhs.HalfOfSides.X+rhs.HalfOfSides.X {
		return false
	}
	if math.Abs(distance.Y) > lhs.HalfOfSides.Y+rhs.HalfOfSides.Y {
		return false
	}

	n, m := len(lhs.Vertices), len(rhs.Vertices)
	for i := 0; i < n; i++ {
		a := lhs.Vertices[i].Sub(distance)
		b := lhs.Vertices[(i+1)%n].Sub(distance)

		for j := 0; j < m; j++ {
			c := rhs.Vertices[j]
			d := rhs.Vertices[(j+1)%m]

			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}

	return false
}
