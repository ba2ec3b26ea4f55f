package segment

import (
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/vector"
)

// Translate returns s displaced by v. The orientation tag is recomputed
// from scratch; a forced hole override is not carried through transforms.
func (s Segment) Translate(v vector.Vector) Segment {
	points := make([]point.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = p.Add(v)
	}
	return rebuild(points)
}

// Scale returns s scaled by factor c about ref.
func (s Segment) Scale(ref point.Point, c numeric.Scalar) Segment {
	points := make([]point.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = p.Scale(ref, c)
	}
	return rebuild(points)
}

// Rotate returns s rotated by angleDeg degrees counter-clockwise about
// pivot.
func (s Segment) Rotate(pivot point.Point, angleDeg float64) Segment {
	points := make([]point.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = p.Rotate(pivot, angleDeg)
	}
	return rebuild(points)
}

// Mirror returns s reflected across the vertical line x=axisX, with point
// order reversed to preserve the CW-is-solid convention under the
// handedness flip a reflection introduces.
func (s Segment) Mirror(axisX numeric.Scalar) Segment {
	points := make([]point.Point, len(s.Points))
	for i, p := range s.Points {
		points[len(s.Points)-1-i] = p.Mirror(axisX)
	}
	return rebuild(points)
}

// Invert returns s with its point order reversed, flipping Solid to Hole
// and vice versa. This is how the Boolean engine realizes A-B as
// Combine(A, B.Invert(), Union) in the root package.
func (s Segment) Invert() Segment {
	points := make([]point.Point, len(s.Points))
	for i, p := range s.Points {
		points[len(s.Points)-1-i] = p
	}
	return rebuild(points)
}
