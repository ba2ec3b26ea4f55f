// Package vector defines Vector, the displacement primitive the rest of the
// geom2d library builds translation, offsetting, and direction math on top
// of. A Vector has no position of its own — it is the difference between two
// Points, or a free-standing displacement such as a translation argument.
//
// # Grid coordinates
//
// Vector components are [numeric.Scalar] values: integers on the fixed-point
// grid described by package numeric. Addition, subtraction and negation are
// exact; Rotate passes through floating point transiently and rounds back
// to the grid, while Direction and Length return float64 results.
package vector

import (
	"fmt"
	"math"

	"github.com/inkfold/geom2d/numeric"
)

// Vector is a 2-D displacement (dx, dy) on the fixed-point grid.
type Vector struct {
	DX numeric.Scalar
	DY numeric.Scalar
}

// New returns a Vector with the given grid-unit components.
func New(dx, dy numeric.Scalar) Vector {
	return Vector{DX: dx, DY: dy}
}

// Add returns the sum of v and other.
func (v Vector) Add(other Vector) Vector {
	return Vector{DX: v.DX + other.DX, DY: v.DY + other.DY}
}

// Sub returns v minus other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{DX: v.DX - other.DX, DY: v.DY - other.DY}
}

// Negate returns (-dx, -dy).
func (v Vector) Negate() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Scale multiplies both components by c.
func (v Vector) Scale(c numeric.Scalar) Vector {
	return Vector{DX: v.DX * c, DY: v.DY * c}
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) numeric.Scalar {
	return v.DX*other.DX + v.DY*other.DY
}

// Cross returns the 2-D cross product (determinant) of v and other. Its
// sign gives the turn direction from v to other: positive is
// counter-clockwise, negative clockwise, zero collinear.
func (v Vector) Cross(other Vector) numeric.Scalar {
	return v.DX*other.DY - v.DY*other.DX
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.DX.Float(), v.DY.Float())
}

// Direction returns the angle of v in degrees, counter-clockwise from +x, as
// the raw result of atan2: the half-open interval (-180, 180]. This
// deliberately does not normalize to [0, 360) — callers that need a
// mod-360 turn angle between two directions (face extraction's
// angle-sorted traversal) apply [numeric.NormalizeDegrees] to the
// *difference* themselves, which is branch-independent; callers that
// compare two raw directions directly (segment orientation) need the
// un-normalized range to match.
func (v Vector) Direction() float64 {
	return numeric.RadiansToDegrees(math.Atan2(v.DY.Float(), v.DX.Float()))
}

// Rotate returns v rotated by angleDeg degrees counter-clockwise, rounded
// back to the grid.
func (v Vector) Rotate(angleDeg float64) Vector {
	rad := numeric.DegreesToRadians(angleDeg)
	sin, cos := math.Sin(rad), math.Cos(rad)
	x, y := v.DX.Float(), v.DY.Float()
	return Vector{
		DX: numeric.Round(x*cos - y*sin),
		DY: numeric.Round(x*sin + y*cos),
	}
}

// String returns a human-readable representation of v in user units.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.DX.UserUnits(), v.DY.UserUnits())
}
