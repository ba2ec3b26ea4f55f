package segment

import (
	"github.com/inkfold/geom2d/line"
	"github.com/inkfold/geom2d/point"
)

// Split computes the intersection(s) of lines a and b and returns two
// Segments that trace the same paths as a and b respectively, but with
// extra vertices inserted at every intersection point. The collinear
// overlap cases are enumerated explicitly rather than folded into
// floating-point predicates.
//
// Split is commutative up to segment swap (Split(a,b) corresponds to
// Split(b,a) with the return values exchanged) and inserts each
// intersection point at most once per returned segment.
func Split(a, b line.Line) (Segment, Segment) {
	var distOn, distFrom [2]float64
	distOn[0], distFrom[0] = a.Project(b.P0)
	distOn[1], distFrom[1] = a.Project(b.P1)

	unsplit := func() (Segment, Segment) {
		return single(a.P0, a.P1), single(b.P0, b.P1)
	}

	if (distFrom[0] > 0 && distFrom[1] > 0) || (distFrom[0] < 0 && distFrom[1] < 0) {
		// Both endpoints of b on the same side of a: no intersection.
		return unsplit()
	}

	if distFrom[0] == 0 && distFrom[1] == 0 {
		return splitCollinear(a, b, distOn)
	}

	if distFrom[0] == 0 {
		// b.P0 lies on line a.
		if distOn[0] > 0 && distOn[0] < 1 {
			return single(a.P0, b.P0, a.P1), single(b.P0, b.P1)
		}
		return unsplit()
	}
	if distFrom[1] == 0 {
		// b.P1 lies on line a.
		if distOn[1] > 0 && distOn[1] < 1 {
			return single(a.P0, b.P1, a.P1), single(b.P0, b.P1)
		}
		return unsplit()
	}

	// b's endpoints are on either side of a: find the crossing parameter.
	onX := distOn[0] + (distOn[1]-distOn[0])/(distFrom[1]-distFrom[0])*(-distFrom[0])
	if onX < 0 || onX > 1 {
		return unsplit()
	}
	if onX == 0 {
		return single(a.P0, a.P1), single(b.P0, a.P0, b.P1)
	}
	if onX == 1 {
		return single(a.P0, a.P1), single(b.P0, a.P1, b.P1)
	}
	x := a.PointAt(onX)
	return single(a.P0, x, a.P1), single(b.P0, x, b.P1)
}

// splitCollinear handles the case where both of b's endpoints lie exactly
// on line a (distFrom == 0 for both): the nine-case table on the relative
// ordering of the two parametric intervals along the shared line.
func splitCollinear(a, b line.Line, distOn [2]float64) (Segment, Segment) {
	if (distOn[0] <= 0 && distOn[1] <= 0) || (distOn[0] >= 1 && distOn[1] >= 1) {
		// The two intervals don't overlap on the shared line.
		return single(a.P0, a.P1), single(b.P0, b.P1)
	}

	// P is the index (0 or 1) of whichever of b's endpoints has the
	// smaller parametric position; Q is the other.
	p, q := 0, 1
	if distOn[0] >= distOn[1] {
		p, q = 1, 0
	}
	other := func(idx int) point.Point {
		if idx == 0 {
			return b.P0
		}
		return b.P1
	}
	// inv reverses the point order unless p is b's first endpoint, so the
	// returned segment always traces b in its own direction no matter which
	// of b's endpoints sits first on the shared line.
	inv := func(points ...point.Point) []point.Point {
		if p == 0 {
			return points
		}
		rev := make([]point.Point, len(points))
		for i, pt := range points {
			rev[len(points)-1-i] = pt
		}
		return rev
	}

	switch {
	case distOn[p] < 0:
		switch {
		case distOn[q] < 1:
			// P,A,Q,B
			return single(a.P0, other(q), a.P1), singlePoints(inv(other(p), a.P0, other(q)))
		case distOn[q] == 1:
			// P,A,BQ
			return single(a.P0, a.P1), singlePoints(inv(other(p), a.P0, other(q)))
		default:
			// P,A,B,Q
			return single(a.P0, a.P1), singlePoints(inv(other(p), a.P0, a.P1, other(q)))
		}
	case distOn[p] == 0:
		switch {
		case distOn[q] < 1:
			// PA,Q,B
			return single(a.P0, other(q), a.P1), single(b.P0, b.P1)
		case distOn[q] == 1:
			// PA,QB
			return single(a.P0, a.P1), single(b.P0, b.P1)
		default:
			// PA,B,Q
			return single(a.P0, a.P1), singlePoints(inv(other(p), a.P1, other(q)))
		}
	default:
		// A,P,...
		switch {
		case distOn[q] < 1:
			// A,P,Q,B
			return single(a.P0, other(p), other(q), a.P1), single(b.P0, b.P1)
		case distOn[q] == 1:
			// A,P,BQ
			return single(a.P0, other(p), a.P1), single(b.P0, b.P1)
		default:
			// A,P,B,Q
			return single(a.P0, other(p), a.P1), singlePoints(inv(other(p), a.P1, other(q)))
		}
	}
}

func single(points ...point.Point) Segment {
	return singlePoints(points)
}

func singlePoints(points []point.Point) Segment {
	seg, err := New(points...)
	if err != nil {
		// Split always passes at least two points; New only rejects an
		// empty list.
		panic(err)
	}
	return seg
}
