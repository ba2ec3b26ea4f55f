package segment

import (
	"fmt"
	"strings"

	"github.com/inkfold/geom2d/vector"
)

// Path renders s as an SVG path data string (the "d" attribute), offset by
// the given displacement before coordinates are divided down to user units
// and y is negated. Consecutive coincident points are skipped; a point
// equal to the segment's start closes the path with "Z" instead of drawing
// a duplicate line to it. Axis-aligned runs use the shorter "H"/"V"
// commands in place of "L".
func (s Segment) Path(offset vector.Vector) string {
	var b strings.Builder
	p0 := s.Points[0]
	fmt.Fprintf(&b, "M%g,%g", (p0.X + offset.DX).UserUnits(), -(p0.Y + offset.DY).UserUnits())

	prev := p0
	for i := 1; i < len(s.Points); i++ {
		p := s.Points[i]
		switch {
		case p.Eq(prev):
			// Duplicate point; nothing to draw.
		case p.Eq(p0):
			b.WriteString("Z")
		case p.X == prev.X:
			fmt.Fprintf(&b, "V%g", -(p.Y + offset.DY).UserUnits())
		case p.Y == prev.Y:
			fmt.Fprintf(&b, "H%g", (p.X + offset.DX).UserUnits())
		default:
			fmt.Fprintf(&b, "L%g,%g", (p.X + offset.DX).UserUnits(), -(p.Y + offset.DY).UserUnits())
		}
		prev = p
	}
	return b.String()
}
