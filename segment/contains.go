package segment

import (
	"fmt"
	"math"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/options"
	"github.com/inkfold/geom2d/point"
)

// defaultContainsEpsilon is the winding-sum tolerance, in degrees, Contains
// falls back to when the caller does not supply options.WithEpsilon.
const defaultContainsEpsilon = 1.0

// Contains reports whether p lies inside the closed region bounded by s,
// using a winding-number test: the signed angular change of (edge - p)
// across every edge of s is summed, and the total must be an integer
// multiple of 360 within a tolerance (in degrees, [defaultContainsEpsilon]
// unless overridden by options.WithEpsilon); p is inside iff that multiple
// is non-zero.
//
// If p is already a vertex of s, Contains returns true directly without
// running the winding sum. The result is not meaningful if p lies exactly
// on the interior of an edge: that edge's angular change of ±180 degrees
// is counted as +180, so the answer depends on the ring's winding and no
// panic is raised. The nesting analyzer (package geom2d) avoids this case
// by construction; callers should not rely on Contains to classify it.
func (s Segment) Contains(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	for _, v := range s.Points {
		if v.Eq(p) {
			return true
		}
	}

	o := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: defaultContainsEpsilon}, opts...)

	var total float64
	for i := 0; i < s.Len(); i++ {
		l := s.Line(i)
		a := l.P0.Sub(p).Direction()
		b := l.P1.Sub(p).Direction()
		total += numeric.NormalizeSignedDegrees(b - a)
	}

	remainder := numeric.NormalizeSignedDegrees(total)
	if !numeric.FloatEquals(remainder, 0, o.Epsilon) {
		panic(fmt.Sprintf("segment: Contains winding sum %.6f is not close to a multiple of 360 (point lies on an edge)", total))
	}
	winding := int(math.Round(total / 360))
	if winding < -1 || winding > 1 {
		panic(fmt.Sprintf("segment: Contains winding number %d out of the expected (-1,0,1) range", winding))
	}
	return winding != 0
}
