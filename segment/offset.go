package segment

import (
	"math"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/point"
)

// fvec is a transient floating-point 2-vector used only inside Offset,
// where the angle-bisector construction needs non-integer scaling that
// would lose precision if rounded to the grid at every intermediate step.
type fvec struct {
	x, y float64
}

func fvecSub(a, b point.Point) fvec {
	return fvec{x: a.X.Float() - b.X.Float(), y: a.Y.Float() - b.Y.Float()}
}

func (v fvec) sub(o fvec) fvec    { return fvec{x: v.x - o.x, y: v.y - o.y} }
func (v fvec) scale(k float64) fvec { return fvec{x: v.x * k, y: v.y * k} }
func (v fvec) length() float64    { return math.Hypot(v.x, v.y) }
func (v fvec) direction() float64 { return numeric.RadiansToDegrees(math.Atan2(v.y, v.x)) }

// Offset inflates (c>0) or shrinks (c<0) a closed segment by the signed
// distance c using the angle-bisector construction: at each vertex, the
// incoming and outgoing edge vectors are scaled to equal length, their
// difference gives the outward bisector normal, and the vertex is displaced
// along it by c / |bisector| / sin(alpha), where alpha is half of 180
// degrees minus the signed direction change at the vertex (the change
// taken in [0, 360)).
//
// Offset is only defined for closed segments; called on an open segment it
// returns an unchanged copy. The result has the same vertex count as s; the
// Boolean engine must be invoked afterward (see Part.Offset in the root
// package) to heal self-intersections introduced by large shrinkage.
func (s Segment) Offset(c numeric.Scalar) Segment {
	if !s.Closed() {
		points := append([]point.Point(nil), s.Points...)
		return Segment{Points: points, Kind: s.Kind}
	}

	n := len(s.Points) - 1
	cf := c.Float()
	result := make([]point.Point, 0, n+1)
	lastPoint := s.Points[n-1]

	for i := 0; i < n; i++ {
		pt := s.Points[i]
		next := s.Points[i+1]

		vTo := fvecSub(pt, lastPoint)
		vFrom := fvecSub(next, pt)
		vToLen, vFromLen := vTo.length(), vFrom.length()

		if vToLen > vFromLen {
			vFrom = vFrom.scale(vToLen / vFromLen)
		} else if vFromLen > vToLen {
			vTo = vTo.scale(vFromLen / vToLen)
		}

		vOffset := vFrom.sub(vTo)
		factor := cf / vOffset.length()

		dirChange := numeric.NormalizeDegrees(vFrom.direction() - vTo.direction())
		alpha := (180 - dirChange) / 2
		sinAlpha := math.Sin(numeric.DegreesToRadians(alpha))
		if sinAlpha != 0 {
			factor /= sinAlpha
		}

		displaced := vOffset.scale(factor)
		result = append(result, point.New(
			pt.X+numeric.Round(displaced.x),
			pt.Y+numeric.Round(displaced.y),
		))
		lastPoint = pt
	}
	result = append(result, result[0])
	return rebuild(result)
}
