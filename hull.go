package geom2d

import (
	"sort"

	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/segment"
	"github.com/inkfold/geom2d/types"
)

// Hull returns a single solid Part containing the convex hull of every
// vertex across p's segments, computed with the monotone chain (Andrew's
// algorithm) construction: sort by (x, y), then build the lower and upper
// chains independently, each by popping the last hull point whenever it
// does not make a strict left turn with the next candidate.
//
// If p has fewer than 3 distinct vertices, Hull returns an empty Part.
func (p Part) Hull() Part {
	pts := collectVertices(p)
	hull := monotoneChain(pts)
	if len(hull) < 3 {
		return New()
	}
	// monotoneChain yields the ring counter-clockwise, which classifies as
	// a hole; the override reverses it into solid orientation.
	seg, err := segment.NewWithKind(types.Solid, append(hull, hull[0])...)
	if err != nil {
		return New()
	}
	return New(seg)
}

func collectVertices(p Part) []point.Point {
	var pts []point.Point
	for _, s := range p.segments {
		n := len(s.Points)
		if s.Closed() {
			n--
		}
		pts = append(pts, s.Points[:n]...)
	}
	return pts
}

// monotoneChain returns the vertices of the convex hull of pts in
// counter-clockwise order, starting at the lexicographically smallest
// point, with no repeated closing vertex.
func monotoneChain(pts []point.Point) []point.Point {
	uniq := dedupSorted(pts)
	n := len(uniq)
	if n < 3 {
		return uniq
	}

	lower := make([]point.Point, 0, n)
	for _, p := range uniq {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]point.Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func dedupSorted(pts []point.Point) []point.Point {
	sorted := append([]point.Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || !p.Eq(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}

// cross returns the sign of the turn from o->a to o->b: positive for a
// counter-clockwise turn, negative clockwise, zero collinear.
func cross(o, a, b point.Point) int64 {
	return int64(a.Sub(o).Cross(b.Sub(o)))
}
