// Package svg renders geom2d Parts to SVG document text: parts are laid
// out left to right with a configurable gap, each top-level solid and the
// holes nested in it are emitted as a single <path> element using its fill
// rule to carve the holes out, and anything recorded with geom2d.Show is
// drawn afterward as a red-stroked overlay.
package svg

import (
	"fmt"
	"strings"

	"github.com/inkfold/geom2d"
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/options"
	"github.com/inkfold/geom2d/types"
	"github.com/inkfold/geom2d/vector"
)

// defaultSeparation is the gap, in user units, left between adjacent Parts
// when the caller does not supply a non-zero separation through
// options.WithSeparation.
const defaultSeparation = 5.0

// Write renders parts to a single SVG document, side by side from left to
// right. At least one Part is required.
func Write(parts []geom2d.Part, opts ...options.GeometryOptionsFunc) (string, error) {
	if len(parts) == 0 {
		return "", fmt.Errorf("svg: at least one part is required")
	}
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	sepUser := o.Separation
	if sepUser == 0 {
		sepUser = defaultSeparation
	}
	sep := numeric.FromUserUnits(sepUser)

	totalBB, offsets := layout(parts, sep)

	w := (totalBB.MaxX - totalBB.MinX + 2*sep).UserUnits()
	h := (totalBB.MaxY - totalBB.MinY + 2*sep).UserUnits()

	var b strings.Builder
	b.WriteString(`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">` + "\n")
	fmt.Fprintf(&b, "<svg width='%gmm' height='%gmm' viewBox='%g %g %g %g' xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" xmlns:xlink=\"http://www.w3.org/1999/xlink\">\n",
		w, h, (totalBB.MinX - sep).UserUnits(), (-totalBB.MaxY - sep).UserUnits(), w, h)

	styleAttr := renderStyle(o.Style)
	for i, p := range parts {
		writePart(&b, p, offsets[i], styleAttr)
	}
	writeDebugOverlay(&b)

	b.WriteString("</svg>\n")
	return b.String(), nil
}

// layout computes the running bounding box of every part laid out left to
// right with sep grid units between each, and the per-part offset that
// achieves that layout.
func layout(parts []geom2d.Part, sep numeric.Scalar) (geom2d.BBox, []vector.Vector) {
	var totalBB geom2d.BBox
	offsets := make([]vector.Vector, len(parts))

	for i, p := range parts {
		bb := p.BBox()
		if i == 0 {
			totalBB = bb
			offsets[0] = vector.New(0, 0)
			continue
		}
		if bb.MaxY-bb.MinY > totalBB.MaxY-totalBB.MinY {
			totalBB.MaxY = bb.MaxY - bb.MinY + totalBB.MinY
		}
		offsets[i] = vector.New(totalBB.MaxX+sep-bb.MinX, totalBB.MinY-bb.MinY)
		totalBB.MaxX += sep + (bb.MaxX - bb.MinX)
	}
	return totalBB, offsets
}

// writePart emits one <path> per top-level solid segment, with any holes
// immediately following it in source order appended to the same path data
// so the style's fill rule carves them out. A new solid segment flushes the
// accumulated path and starts another; open segments join whichever path
// is currently accumulating.
func writePart(b *strings.Builder, p geom2d.Part, offset vector.Vector, styleAttr string) {
	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		fmt.Fprintf(b, "<path d=\"%s\"%s/>\n", current.String(), styleAttr)
		current.Reset()
	}

	for _, s := range p.Segments() {
		if current.Len() > 0 && s.Kind == types.Solid {
			flush()
		}
		current.WriteString(s.Path(offset))
	}
	flush()
}

// writeDebugOverlay drains geom2d's process-wide debug-show list into a red
// overlay group. It resets the list afterward so repeated library-mode
// Write calls don't re-render Parts shown during an earlier call.
func writeDebugOverlay(b *strings.Builder) {
	show := geom2d.DebugShow()
	if len(show) == 0 {
		return
	}
	defer geom2d.ResetDebugShow()
	b.WriteString("<g style='fill:none;stroke:red'>\n")
	for _, p := range show {
		for _, s := range p.Segments() {
			fmt.Fprintf(b, "<path d=\"%s\"/>\n", s.Path(vector.New(0, 0)))
		}
	}
	b.WriteString("</g>\n")
}

// renderStyle builds the SVG style attribute (including its leading space)
// from the non-empty fields of style, or the empty string if none are set.
func renderStyle(style options.Style) string {
	var decls []string
	if style.Fill != "" {
		decls = append(decls, "fill:"+style.Fill)
	}
	if style.Stroke != "" {
		decls = append(decls, "stroke:"+style.Stroke)
	}
	if style.StrokeWidth != 0 {
		decls = append(decls, fmt.Sprintf("stroke-width:%g", style.StrokeWidth))
	}
	if len(decls) == 0 {
		return ""
	}
	return " style='" + strings.Join(decls, ";") + "'"
}
