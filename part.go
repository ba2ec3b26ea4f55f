// Package geom2d is a 2-D constructive geometry engine: it builds planar
// shapes from primitive polygons and combines them with Boolean operations
// (union, intersection, difference), geometric transforms, a signed-distance
// offset operator, and a convex hull, producing a normalized collection of
// oriented simple polygons suitable for rendering to a vector graphics
// document (package svg).
//
// Part is the public entry point; everything it needs — the fixed-point
// grid, the Vector/Point/Line primitives, and Segment's orientation model —
// lives in the leaf packages this one imports.
package geom2d

import (
	"fmt"

	"github.com/inkfold/geom2d/circle"
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/options"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/rectangle"
	"github.com/inkfold/geom2d/segment"
	"github.com/inkfold/geom2d/types"
	"github.com/inkfold/geom2d/vector"
)

// Part is an unordered collection of Segments, the public entry point for
// Boolean combination, transforms, offset, and bounding-box/alignment
// queries. Parts are immutable; every operation allocates a fresh Part.
type Part struct {
	segments []segment.Segment
}

// New returns a Part containing the given segments.
func New(segments ...segment.Segment) Part {
	return Part{segments: append([]segment.Segment(nil), segments...)}
}

// Segments returns a copy of p's segments.
func (p Part) Segments() []segment.Segment {
	return append([]segment.Segment(nil), p.segments...)
}

// Polygon builds a solid Part from a closed ring of points (the first point
// repeated at the end). The ring's winding does not matter: the point order
// is reversed if needed so the result is always a solid.
func Polygon(points ...point.Point) (Part, error) {
	seg, err := segment.NewWithKind(types.Solid, points...)
	if err != nil {
		return Part{}, err
	}
	return New(seg), nil
}

// Rect returns a Part containing a single solid rectangle of the given
// width and height, centered on the origin.
func Rect(width, height numeric.Scalar) (Part, error) {
	return Polygon(rectangle.New(width, height).Points()...)
}

// Circle returns a Part containing a single solid polygonal approximation
// of a circle of the given radius, centered on the origin. The facet count
// defaults to circle.DefaultFacets; override it with options.WithFacets.
func Circle(radius numeric.Scalar, opts ...options.GeometryOptionsFunc) (Part, error) {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return Polygon(circle.New(radius).Points(o.Facets)...)
}

// Cut returns a Part containing a single open segment with no area,
// connecting a to b.
func Cut(a, b point.Point) (Part, error) {
	seg, err := segment.New(a, b)
	if err != nil {
		return Part{}, err
	}
	return New(seg), nil
}

// Union returns the Boolean union of p and other.
func (p Part) Union(other Part) Part {
	return Combine(p, other, types.Union)
}

// Intersection returns the Boolean intersection of p and other.
func (p Part) Intersection(other Part) Part {
	return Combine(p, other, types.Intersection)
}

// Difference returns p with other's area removed, realized as
// p.Union(other.Invert()); there is no separate difference code path in
// the engine.
func (p Part) Difference(other Part) Part {
	return p.Union(other.Invert())
}

// Invert flips every segment's orientation (Solid<->Hole); Open segments
// are returned unchanged.
func (p Part) Invert() Part {
	out := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.Invert()
	}
	return New(out...)
}

// Translate returns p displaced by v.
func (p Part) Translate(v vector.Vector) Part {
	out := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.Translate(v)
	}
	return New(out...)
}

// Scale returns p scaled by factor c about ref, the origin if omitted.
func (p Part) Scale(c numeric.Scalar, ref ...point.Point) Part {
	pivot := point.New(0, 0)
	if len(ref) > 0 {
		pivot = ref[0]
	}
	out := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.Scale(pivot, c)
	}
	return New(out...)
}

// Rotate returns p rotated by angleDeg degrees counter-clockwise about ref,
// the origin if omitted.
func (p Part) Rotate(angleDeg float64, ref ...point.Point) Part {
	pivot := point.New(0, 0)
	if len(ref) > 0 {
		pivot = ref[0]
	}
	out := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.Rotate(pivot, angleDeg)
	}
	return New(out...)
}

// Mirror returns p reflected across the y axis (x=0).
func (p Part) Mirror() Part {
	out := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.Mirror(0)
	}
	return New(out...)
}

// Offset inflates (c>0) or shrinks (c<0) every closed segment of p by c,
// then heals any self-intersections the displacement introduced (e.g. a
// thin neck collapsing under shrinkage) by composing the result through a
// union with an empty Part.
func (p Part) Offset(c numeric.Scalar) Part {
	out := make([]segment.Segment, len(p.segments))
	for i, s := range p.segments {
		out[i] = s.Offset(c)
	}
	return New(out...).Union(New())
}

// BBox is the axis-aligned bounding box of a Part, in grid-unit Scalars.
// Use [BBox.UserUnits] for the user-unit equivalent.
type BBox struct {
	MinX, MinY, MaxX, MaxY numeric.Scalar
}

// UserUnits returns b's corners converted to user units by dividing by the
// grid unit.
func (b BBox) UserUnits() (minX, minY, maxX, maxY float64) {
	return b.MinX.UserUnits(), b.MinY.UserUnits(), b.MaxX.UserUnits(), b.MaxY.UserUnits()
}

// BBox returns the axis-aligned bounding box of every vertex in p, in grid
// units. An empty Part returns the zero BBox.
func (p Part) BBox() BBox {
	var bb BBox
	first := true
	for _, s := range p.segments {
		for _, pt := range s.Points {
			if first {
				bb = BBox{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y}
				first = false
				continue
			}
			bb.MinX = min(bb.MinX, pt.X)
			bb.MinY = min(bb.MinY, pt.Y)
			bb.MaxX = max(bb.MaxX, pt.X)
			bb.MaxY = max(bb.MaxY, pt.Y)
		}
	}
	return bb
}

// Align translates p so its bounding box aligns to the given vertical
// ('t', 'c', or 'b') and horizontal ('l', 'c', or 'r') anchor. The
// translation is (width-x, height-y) of the bounding box, where x and y
// are the anchor coordinates.
func (p Part) Align(vert, horiz byte) (Part, error) {
	bb := p.BBox()

	var y numeric.Scalar
	switch vert {
	case 't':
		y = bb.MaxY
	case 'c':
		y = 0
	case 'b':
		y = bb.MinY
	default:
		return Part{}, fmt.Errorf("part: invalid vertical alignment %q", vert)
	}

	var x numeric.Scalar
	switch horiz {
	case 'l':
		x = bb.MinX
	case 'c':
		x = 0
	case 'r':
		x = bb.MaxX
	default:
		return Part{}, fmt.Errorf("part: invalid horizontal alignment %q", horiz)
	}

	width := bb.MaxX - bb.MinX
	height := bb.MaxY - bb.MinY
	return p.Translate(vector.New(width-x, height-y)), nil
}
