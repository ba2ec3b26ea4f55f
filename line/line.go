// Package line defines Line, an ordered pair of Points, along with the
// projection operation the Boolean engine's line-line intersection splitter
// builds on (package segment, which depends on this one but not vice versa
// to keep the import graph acyclic).
package line

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/vector"
)

// Line is a directed line from P0 to P1. It may be zero-length; callers
// handle that as a degenerate case rather than rejecting it at
// construction.
type Line struct {
	P0 point.Point
	P1 point.Point
}

// New returns the Line from p0 to p1.
func New(p0, p1 point.Point) Line {
	return Line{P0: p0, P1: p1}
}

// Vector returns the displacement from l.P0 to l.P1.
func (l Line) Vector() vector.Vector {
	return l.P1.Sub(l.P0)
}

// Length returns the Euclidean length of l.
func (l Line) Length() float64 {
	return l.Vector().Length()
}

// Negate returns l with its endpoints swapped.
func (l Line) Negate() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// Rotate returns l with both endpoints rotated by angleDeg degrees
// counter-clockwise about pivot.
func (l Line) Rotate(pivot point.Point, angleDeg float64) Line {
	return Line{P0: l.P0.Rotate(pivot, angleDeg), P1: l.P1.Rotate(pivot, angleDeg)}
}

// Project computes the parametric position t of p along l (0 at P0, 1 at
// P1) and the signed perpendicular distance d from l to p, positive on the
// right-hand side when traversing l from P0 to P1 in the y-up grid frame.
//
// Three special cases avoid rounding error: a zero-length l returns
// (0, |p-P0|); p coincident with an endpoint returns (0,0) or (1,0); an
// axis-aligned l returns t and d as exact integer-grid ratios along the
// aligned axis.
func (l Line) Project(p point.Point) (t, d float64) {
	dir := l.Vector()
	length2 := dir.Dot(dir)
	if length2 == 0 {
		return 0, p.Sub(l.P0).Length()
	}
	if p.Eq(l.P0) {
		return 0, 0
	}
	if p.Eq(l.P1) {
		return 1, 0
	}
	if l.P0.X == l.P1.X {
		// Vertical line.
		d = float64(p.X - l.P0.X)
		if l.P1.Y < l.P0.Y {
			d = -d
		}
		return float64(p.Y-l.P0.Y) / float64(l.P1.Y-l.P0.Y), d
	}
	if l.P0.Y == l.P1.Y {
		// Horizontal line.
		d = float64(l.P0.Y - p.Y)
		if l.P1.X < l.P0.X {
			d = -d
		}
		return float64(p.X-l.P0.X) / float64(l.P1.X-l.P0.X), d
	}
	v := p.Sub(l.P0)
	distOn := float64(dir.Dot(v)) / float64(length2)
	perp := vector.New(-v.DY, v.DX)
	distFrom := float64(dir.Dot(perp)) / math.Sqrt(float64(length2))
	return distOn, distFrom
}

// PointAt returns the point at parametric position t along l, rounded to
// the grid.
func (l Line) PointAt(t float64) point.Point {
	dir := l.Vector()
	return point.New(
		l.P0.X+numeric.Round(dir.DX.Float()*t),
		l.P0.Y+numeric.Round(dir.DY.Float()*t),
	)
}

// String returns a human-readable representation of l.
func (l Line) String() string {
	return fmt.Sprintf("[%s -> %s]", l.P0, l.P1)
}

// MarshalJSON serializes l as {"p0":...,"p1":...}.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		P0 point.Point `json:"p0"`
		P1 point.Point `json:"p1"`
	}{P0: l.P0, P1: l.P1})
}

// UnmarshalJSON deserializes JSON produced by [Line.MarshalJSON].
func (l *Line) UnmarshalJSON(data []byte) error {
	var temp struct {
		P0 point.Point `json:"p0"`
		P1 point.Point `json:"p1"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.P0 = temp.P0
	l.P1 = temp.P1
	return nil
}
