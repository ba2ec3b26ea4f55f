// Package circle provides Circle, a center-and-radius value used to
// generate the vertex ring of a polygonal circle approximation. Circle is
// a thin ring generator: the root package turns the ring [Circle.Points]
// returns into a closed solid Segment, the same relationship package
// rectangle has to its own ring.
package circle

import (
	"math"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/point"
)

// DefaultFacets is the side count circle construction falls back to when
// the caller requests zero or a negative facet count.
const DefaultFacets = 50

// Circle is a center and radius on the fixed-point grid.
type Circle struct {
	Center point.Point
	Radius numeric.Scalar
}

// New returns a Circle of the given radius centered on the origin.
func New(radius numeric.Scalar) Circle {
	return Circle{Radius: radius}
}

// NewFromPoint returns a Circle of the given radius centered at center.
func NewFromPoint(center point.Point, radius numeric.Scalar) Circle {
	return Circle{Center: center, Radius: radius}
}

// Points returns the fn-sided polygonal approximation of c as a closed
// vertex ring (the first point repeated at the end). fn falls back to
// [DefaultFacets] if zero or negative.
//
// The angle steps backward (decreasing, starting at the +x axis) so the
// ring winds clockwise: a counterclockwise polygon is a hole under this
// library's orientation convention.
func (c Circle) Points(fn int) []point.Point {
	if fn <= 0 {
		fn = DefaultFacets
	}
	r := c.Radius.Float()
	pts := make([]point.Point, 0, fn+1)
	for i := 0; i < fn; i++ {
		angle := -float64(i) * 2 * math.Pi / float64(fn)
		pts = append(pts, point.New(
			c.Center.X+numeric.Round(r*math.Cos(angle)),
			c.Center.Y+numeric.Round(r*math.Sin(angle)),
		))
	}
	return append(pts, pts[0])
}
