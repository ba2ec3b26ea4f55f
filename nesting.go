package geom2d

import (
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/segment"
	"github.com/inkfold/geom2d/types"
)

// nestingFrame is one entry of the containment stack built by buildNesting.
type nestingFrame struct {
	polygon  segment.Segment
	contains []*nestingFrame
	hole     bool
}

// buildNesting groups faces — in the order extractFaces discovered them,
// which follows the lex-point order of the incidence map — into a
// containment forest. Frames are popped off the stack until the top frame
// contains the next face's first vertex.
func buildNesting(faces []segment.Segment) []*nestingFrame {
	var root []*nestingFrame
	var stack []*nestingFrame

	for _, face := range faces {
		for len(stack) > 0 && !frameContains(stack[len(stack)-1], face) {
			stack = stack[:len(stack)-1]
		}

		frame := &nestingFrame{polygon: face, hole: face.Kind == types.Hole}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.contains = append(parent.contains, frame)
		} else {
			root = append(root, frame)
		}
		stack = append(stack, frame)
	}
	return root
}

// frameContains reports whether top's polygon contains face's first vertex.
// Three cases:
//
//  1. Identity with top's first vertex: contained, since the lex-sort
//     traversal guarantees a shared lex-min vertex means nesting.
//  2. The vertex is absent from top's point list: fall back to the
//     winding-number test, [segment.Segment.Contains].
//  3. The vertex is shared with an interior vertex of top: compare the new
//     polygon's outgoing direction against the cone formed by the two
//     edges meeting at that vertex, inverting the answer when top is a
//     hole.
func frameContains(top *nestingFrame, face segment.Segment) bool {
	poly := top.polygon
	p := face.Points[0]

	if poly.Points[0].Eq(p) {
		return true
	}

	idx := -1
	for i := 1; i < len(poly.Points)-1; i++ {
		if poly.Points[i].Eq(p) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return poly.Contains(p)
	}

	prevDir := poly.Points[idx-1].Sub(poly.Points[idx]).Direction()
	nextDir := poly.Points[idx+1].Sub(poly.Points[idx]).Direction()
	faceDir := face.Points[1].Sub(face.Points[0]).Direction()

	inside := numeric.NormalizeDegrees(faceDir-prevDir) < numeric.NormalizeDegrees(nextDir-prevDir)
	if top.hole {
		inside = !inside
	}
	return inside
}

// flatten walks the containment forest accumulating a depth counter that
// increments entering a solid and decrements entering a hole, emitting a
// polygon whenever an entry transitions depth to the value op's threshold
// encodes: emit iff (depth == MinStack-1 and hole) or
// (depth == MinStack and not hole).
func flatten(roots []*nestingFrame, op types.BooleanOp) []segment.Segment {
	minStack := op.MinStack()
	var out []segment.Segment

	var walk func(frames []*nestingFrame, depth int)
	walk = func(frames []*nestingFrame, depth int) {
		for _, f := range frames {
			d := depth
			if f.hole {
				d--
			} else {
				d++
			}
			if (d == minStack-1 && f.hole) || (d == minStack && !f.hole) {
				out = append(out, f.polygon)
			}
			walk(f.contains, d)
		}
	}
	walk(roots, 0)
	return out
}
