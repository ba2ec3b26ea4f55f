// Package segment defines Segment, a polyline of one or more connected
// Lines that is optionally closed and carries an orientation tag. Segment
// depends on package line (one-directional) so that the nine-case
// collinear-overlap split table in split.go — which constructs Segments out
// of Lines — does not force package line to know about Segment.
package segment

import (
	"encoding/json"
	"fmt"

	"github.com/inkfold/geom2d/line"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/types"
)

// Segment is an ordered list of points p[0..n] with an orientation tag.
// When p[0] equals p[n] and there are at least 4 points (3 vertices plus
// the repeated first point), the segment is closed and its Kind is Solid
// or Hole; otherwise Kind is Open. Distinctness of the vertices is not
// checked.
// A closed segment is rotated at construction so p[0] is the vertex with
// lexicographically smallest (x, y).
type Segment struct {
	Points []point.Point
	Kind   types.Kind
}

// New builds a Segment from a non-empty sequence of points. The orientation
// tag is computed from the winding of the closed ring, if any.
func New(points ...point.Point) (Segment, error) {
	if len(points) == 0 {
		return Segment{}, fmt.Errorf("segment: at least one point is required")
	}
	return rebuild(points), nil
}

// rebuild constructs a Segment from a known non-empty point list without
// the empty-input check New performs. Transform methods use this, since
// they always start from an existing Segment's non-empty Points.
func rebuild(points []point.Point) Segment {
	rotated, kind := classify(points)
	return Segment{Points: rotated, Kind: kind}
}

// FromLines builds a Segment from a non-empty sequence of Lines. Successive
// lines must share endpoints (line i's P0 must equal line i-1's P1);
// violating this is a structural-validity construction error.
func FromLines(lines ...line.Line) (Segment, error) {
	if len(lines) == 0 {
		return Segment{}, fmt.Errorf("segment: at least one line is required")
	}
	points := make([]point.Point, 0, len(lines)+1)
	points = append(points, lines[0].P0, lines[0].P1)
	for i := 1; i < len(lines); i++ {
		if !lines[i].P0.Eq(points[len(points)-1]) {
			return Segment{}, fmt.Errorf("segment: line %d does not connect to the previous endpoint", i)
		}
		points = append(points, lines[i].P1)
	}
	return New(points...)
}

// NewWithKind builds a Segment like [New], then applies an explicit
// orientation override. If kind is [types.Open], the computed orientation
// is discarded in favor of Open without reordering points. If kind is
// [types.Solid] or [types.Hole] and disagrees with the computed
// orientation, the point order is reversed to match. Forcing Solid or Hole
// onto a point sequence that does not form a closed ring is a
// structural-validity error.
func NewWithKind(kind types.Kind, points ...point.Point) (Segment, error) {
	seg, err := New(points...)
	if err != nil {
		return Segment{}, err
	}
	if kind == types.Open {
		seg.Kind = types.Open
		return seg, nil
	}
	if seg.Kind == types.Open {
		return Segment{}, fmt.Errorf("segment: cannot force %v orientation on an open polyline", kind)
	}
	if seg.Kind != kind {
		reverse(seg.Points)
		seg.Kind = kind
	}
	return seg, nil
}

// Len returns the number of lines in s (one fewer than the number of
// points).
func (s Segment) Len() int {
	return len(s.Points) - 1
}

// Line returns the i-th line of s, from Points[i] to Points[i+1].
func (s Segment) Line(i int) line.Line {
	return line.New(s.Points[i], s.Points[i+1])
}

// Closed reports whether s is a polygon (Solid or Hole), as opposed to an
// Open polyline.
func (s Segment) Closed() bool {
	return s.Kind != types.Open
}

// classify determines whether points form a closed ring and, if so, rotates
// them so the lexicographically smallest vertex is first and returns the
// computed orientation.
func classify(points []point.Point) ([]point.Point, types.Kind) {
	n := len(points)
	if n < 4 || !points[0].Eq(points[n-1]) {
		return points, types.Open
	}
	idx := lexMinIndex(points[:n-1])
	rotated := make([]point.Point, 0, n)
	rotated = append(rotated, points[idx:n-1]...)
	rotated = append(rotated, points[:idx+1]...)

	v1 := rotated[1].Sub(rotated[0])
	v2 := rotated[len(rotated)-2].Sub(rotated[len(rotated)-1])
	if v1.Direction() < v2.Direction() {
		return rotated, types.Hole
	}
	return rotated, types.Solid
}

// lexMinIndex returns the index of the lexicographically smallest point in
// points, preferring the earliest index on ties.
func lexMinIndex(points []point.Point) int {
	best := 0
	for i := 1; i < len(points); i++ {
		if points[i].Less(points[best]) {
			best = i
		}
	}
	return best
}

func reverse(points []point.Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// String returns a human-readable representation of s.
func (s Segment) String() string {
	out := "Segment:"
	for _, p := range s.Points {
		out += " -> " + p.String()
	}
	return out
}

// MarshalJSON serializes s as {"points":[...],"kind":"Solid"|"Hole"|"Open"},
// the scene-description format the CLI tool writes with -format json (the
// CLI does not read scenes back).
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Points []point.Point `json:"points"`
		Kind   string        `json:"kind"`
	}{Points: s.Points, Kind: s.Kind.String()})
}

// UnmarshalJSON deserializes JSON produced by [Segment.MarshalJSON],
// reconstructing s via [NewWithKind] so the stored Kind is honored rather
// than recomputed purely from winding.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var temp struct {
		Points []point.Point `json:"points"`
		Kind   string        `json:"kind"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	var kind types.Kind
	switch temp.Kind {
	case "Solid":
		kind = types.Solid
	case "Hole":
		kind = types.Hole
	case "Open":
		kind = types.Open
	default:
		return fmt.Errorf("segment: unrecognized kind %q", temp.Kind)
	}
	rebuilt, err := NewWithKind(kind, temp.Points...)
	if err != nil {
		return err
	}
	*s = rebuilt
	return nil
}
