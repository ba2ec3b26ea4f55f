// Package point defines Point, the positional primitive every higher-level
// geom2d type (line, segment, part) is built from.
//
// Coordinates are [numeric.Scalar] values on the fixed-point grid: equality
// and ordering are bit-exact comparisons of raw integers, never real-valued
// closeness.
package point

import (
	"encoding/json"
	"fmt"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/vector"
)

// Point is a position on the fixed-point grid.
type Point struct {
	X numeric.Scalar
	Y numeric.Scalar
}

// New returns a Point at the given grid-unit coordinates.
func New(x, y numeric.Scalar) Point {
	return Point{X: x, Y: y}
}

// FromUserUnits returns a Point built from coordinates expressed in user
// units, rounding each to the nearest grid position.
func FromUserUnits(x, y float64) Point {
	return Point{X: numeric.FromUserUnits(x), Y: numeric.FromUserUnits(y)}
}

// Add returns p displaced by v.
func (p Point) Add(v vector.Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) vector.Vector {
	return vector.New(p.X-q.X, p.Y-q.Y)
}

// Eq reports whether p and q occupy the same grid position exactly.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less reports whether p sorts strictly before q in lexicographic
// (x, then y) order — the ordering face extraction and segment rotation use
// to find the "lex-min" vertex.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Rotate returns p rotated by angleDeg degrees counter-clockwise about
// pivot. Pivot comes first and angle second; every rotation in this module
// uses that argument order.
func (p Point) Rotate(pivot Point, angleDeg float64) Point {
	return pivot.Add(p.Sub(pivot).Rotate(angleDeg))
}

// Scale returns p scaled by factor c about ref.
func (p Point) Scale(ref Point, c numeric.Scalar) Point {
	return ref.Add(p.Sub(ref).Scale(c))
}

// Mirror returns p reflected across the vertical line x=axisX.
func (p Point) Mirror(axisX numeric.Scalar) Point {
	return Point{X: 2*axisX - p.X, Y: p.Y}
}

// String returns a human-readable representation of p in user units.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X.UserUnits(), p.Y.UserUnits())
}

// MarshalJSON serializes p as {"x":...,"y":...} in grid units.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X int64 `json:"x"`
		Y int64 `json:"y"`
	}{X: int64(p.X), Y: int64(p.Y)})
}

// UnmarshalJSON deserializes JSON produced by [Point.MarshalJSON].
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X int64 `json:"x"`
		Y int64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.X = numeric.Scalar(temp.X)
	p.Y = numeric.Scalar(temp.Y)
	return nil
}
