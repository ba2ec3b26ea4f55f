// Package rectangle provides Rectangle, a width-and-height value used to
// generate the vertex ring of an axis-aligned rectangle centered on the
// origin. Rectangle is a thin ring generator mirroring package circle: the
// root package turns the ring [Rectangle.Points] returns into a closed
// solid Segment.
package rectangle

import (
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/point"
)

// Rectangle is a width and height on the fixed-point grid.
type Rectangle struct {
	Width  numeric.Scalar
	Height numeric.Scalar
}

// New returns a Rectangle of the given width and height.
func New(width, height numeric.Scalar) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Points returns the four corners of r as a closed vertex ring (the first
// point repeated at the end), centered on the origin: bottom-left,
// top-left, top-right, bottom-right, a clockwise (solid) winding.
func (r Rectangle) Points() []point.Point {
	hw, hh := r.Width/2, r.Height/2
	pts := []point.Point{
		point.New(-hw, -hh),
		point.New(-hw, hh),
		point.New(hw, hh),
		point.New(hw, -hh),
	}
	return append(pts, pts[0])
}
