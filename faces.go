package geom2d

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/inkfold/geom2d/line"
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/segment"
)

// incidentEdge is one undirected edge registered at both of its endpoints
// in the incidence map built by buildIncidenceMap. Edges are compared by
// pointer identity so a single edge can be removed from both endpoints'
// lists once it is consumed by a face.
type incidentEdge struct {
	line line.Line
}

// side returns the edge's endpoint at index 0 (P0) or 1 (P1).
func (e *incidentEdge) side(idx int) point.Point {
	if idx == 0 {
		return e.line.P0
	}
	return e.line.P1
}

// outgoingDirection returns the direction, in degrees, of e as seen
// leaving p. Summing (P1-p) and (P0-p) is a shortcut that works regardless
// of which endpoint p actually is: whichever term is p cancels to the zero
// vector, leaving exactly the vector from p to the other endpoint.
func outgoingDirection(e *incidentEdge, p point.Point) float64 {
	return e.line.P1.Sub(p).Add(e.line.P0.Sub(p)).Direction()
}

func comparePoints(x, y interface{}) int {
	a, b := x.(point.Point), y.(point.Point)
	switch {
	case a.Eq(b):
		return 0
	case a.Less(b):
		return -1
	default:
		return 1
	}
}

// buildIncidenceMap registers every line at both of its endpoints in a
// point-keyed map ordered lexicographically. The emirpasic/gods treemap
// gives ordered iteration without hand-sorting a key slice on every pass.
func buildIncidenceMap(lines []line.Line) *treemap.Map {
	im := treemap.NewWith(comparePoints)
	register := func(p point.Point, e *incidentEdge) {
		var list []*incidentEdge
		if v, ok := im.Get(p); ok {
			list = v.([]*incidentEdge)
		}
		im.Put(p, append(list, e))
	}
	for _, l := range lines {
		e := &incidentEdge{line: l}
		register(l.P0, e)
		register(l.P1, e)
	}
	return im
}

func removeEdge(im *treemap.Map, p point.Point, e *incidentEdge) {
	v, ok := im.Get(p)
	if !ok {
		return
	}
	list := v.([]*incidentEdge)
	for i, cand := range list {
		if cand == e {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	im.Put(p, list)
}

// extractFaces walks the planar graph formed by lines — already split
// against each other and deduplicated — and returns every closed face as a
// Segment, via angle-sorted traversal. Faces are
// returned in the order they were discovered, which [buildNesting] depends
// on to recover containment via the lex-point ordering guarantee.
func extractFaces(lines []line.Line) []segment.Segment {
	im := buildIncidenceMap(lines)
	var faces []segment.Segment

	for im.Size() > 0 {
		it := im.Iterator()
		if !it.Next() {
			break
		}
		p := it.Key().(point.Point)
		edges := it.Value().([]*incidentEdge)
		if len(edges) == 0 {
			im.Remove(p)
			continue
		}

		first := pickStartEdge(edges, p)
		hole := first.side(1).Eq(p)
		a, b := 0, 1
		if hole {
			a, b = 1, 0
		}

		polygon := []point.Point{first.side(a), first.side(b)}
		removeEdge(im, p, first)
		removeEdge(im, polygon[len(polygon)-1], first)

		for !polygon[0].Eq(polygon[len(polygon)-1]) {
			cur := polygon[len(polygon)-1]
			arrivalDir := polygon[len(polygon)-2].Sub(cur).Direction()

			edge := pickNextEdge(im, cur, arrivalDir, a)
			next := edge.side(b)
			polygon = append(polygon, next)
			removeEdge(im, cur, edge)
			removeEdge(im, next, edge)
		}

		if hole {
			reversePoints(polygon)
		}

		face, err := segment.New(polygon...)
		if err != nil {
			panic(err)
		}
		faces = append(faces, face)
	}
	return faces
}

// pickStartEdge chooses the incident edge whose outgoing direction from p
// is largest (most counter-clockwise from +x), the starting edge for the
// leftmost-lowest point of the remaining graph.
func pickStartEdge(edges []*incidentEdge, p point.Point) *incidentEdge {
	candidates := append([]*incidentEdge(nil), edges...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return outgoingDirection(candidates[i], p) < outgoingDirection(candidates[j], p)
	})
	return candidates[len(candidates)-1]
}

// pickNextEdge sorts the edges still incident to cur by their turn angle
// relative to the arrival direction, then walks from the largest turn
// (near U-turn) inward, tracking a nesting depth of "edges that don't
// leave cur on side a" until it finds the edge that does leave at depth
// zero — the tightest face on the correct side.
func pickNextEdge(im *treemap.Map, cur point.Point, arrivalDir float64, a int) *incidentEdge {
	v, _ := im.Get(cur)
	around := append([]*incidentEdge(nil), v.([]*incidentEdge)...)
	sort.SliceStable(around, func(i, j int) bool {
		di := numeric.NormalizeDegrees(outgoingDirection(around[i], cur) - arrivalDir)
		dj := numeric.NormalizeDegrees(outgoingDirection(around[j], cur) - arrivalDir)
		return di < dj
	})

	t := len(around) - 1
	depth := 0
	for {
		if !around[t].side(a).Eq(cur) {
			depth++
		} else if depth > 0 {
			depth--
		} else {
			break
		}
		t--
	}
	return around[t]
}

func reversePoints(points []point.Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
