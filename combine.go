package geom2d

import (
	"github.com/google/btree"

	"github.com/inkfold/geom2d/line"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/segment"
	"github.com/inkfold/geom2d/types"
)

// collectEdges gathers every line of every closed segment across parts into
// a flat, growable edge list. Open segments carry no area
// and are returned separately, untouched, to be reattached to the combined
// result once the Boolean engine has run.
func collectEdges(parts ...Part) (edges []line.Line, open []segment.Segment) {
	for _, p := range parts {
		for _, s := range p.segments {
			if !s.Closed() {
				open = append(open, s)
				continue
			}
			for i := 0; i < s.Len(); i++ {
				edges = append(edges, s.Line(i))
			}
		}
	}
	return edges, open
}

// splitAllPairs replaces edges in place with the result of intersecting
// every ordered pair (i, j), i<j, against each other.
//
// The inner bound is snapshotted at the start of each outer iteration: a
// line appended by splitting edges[i] against edges[j] only participates in
// later outer iterations (when i itself reaches that index), never against
// the current i within the same pass. A piece appended mid-pass is always a
// sub-line of an edge that already had its turn, so every genuinely new
// pair is still visited.
func splitAllPairs(edges []line.Line) []line.Line {
	i := 0
	for i < len(edges)-1 {
		jEnd := len(edges)
		for j := i + 1; j < jEnd; j++ {
			sa, sb := segment.Split(edges[i], edges[j])

			edges[i] = sa.Line(0)
			for k := 1; k < sa.Len(); k++ {
				edges = append(edges, sa.Line(k))
			}

			edges[j] = sb.Line(0)
			for k := 1; k < sb.Len(); k++ {
				edges = append(edges, sb.Line(k))
			}
		}
		i++
	}
	return edges
}

// canonicalEdge is a line keyed by its endpoints in lex-sorted order, for
// the ordered dedup walk. seq breaks ties between distinct
// edges that share a canonical key (e.g. two coincident same-direction
// edges), so the BTree — which requires a strict order with no ties —
// never silently drops one.
type canonicalEdge struct {
	lo, hi point.Point
	edge   line.Line
	seq    int
}

func canonicalKeyLess(a, b canonicalEdge) bool {
	if !a.lo.Eq(b.lo) {
		return a.lo.Less(b.lo)
	}
	if !a.hi.Eq(b.hi) {
		return a.hi.Less(b.hi)
	}
	return a.seq < b.seq
}

// dedupEdges sorts edges by their canonical (lex-sorted endpoint pair) key
// via an ordered BTree walk, then removes consecutive pairs that are exact
// reverses of each other — coincident edges traversed in opposite
// directions, interior to the union and cancelling. Same-direction
// duplicates are left in place; the depth filter accounts for them.
func dedupEdges(edges []line.Line) []line.Line {
	tree := btree.NewG(32, canonicalKeyLess)
	for seq, l := range edges {
		lo, hi := l.P0, l.P1
		if hi.Less(lo) {
			lo, hi = hi, lo
		}
		tree.ReplaceOrInsert(canonicalEdge{lo: lo, hi: hi, edge: l, seq: seq})
	}

	sorted := make([]canonicalEdge, 0, tree.Len())
	tree.Ascend(func(item canonicalEdge) bool {
		sorted = append(sorted, item)
		return true
	})

	result := make([]line.Line, 0, len(sorted))
	i := 0
	for i < len(sorted) {
		if i+1 < len(sorted) && isReversePair(sorted[i].edge, sorted[i+1].edge) {
			i += 2
			continue
		}
		result = append(result, sorted[i].edge)
		i++
	}
	return result
}

func isReversePair(a, b line.Line) bool {
	return a.P0.Eq(b.P1) && a.P1.Eq(b.P0)
}

// Combine runs the Boolean engine end to end: split
// every pair of edges from a and b against each other, cancel coincident
// reverse-direction edge pairs, extract faces by angle-sorted traversal,
// recover the solid/hole containment forest, and flatten it to whichever
// polygons op keeps. Open segments from both inputs pass through unchanged.
func Combine(a, b Part, op types.BooleanOp) Part {
	edges, open := collectEdges(a, b)
	edges = splitAllPairs(edges)
	edges = dedupEdges(edges)
	logDebugf("combine %v: %d edges after split and dedup, %d open carried", op, len(edges), len(open))
	faces := extractFaces(edges)
	logDebugf("combine %v: %d faces extracted", op, len(faces))
	forest := buildNesting(faces)
	kept := flatten(forest, op)
	return New(append(kept, open...)...)
}
