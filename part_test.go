package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/options"
	"github.com/inkfold/geom2d/point"
	"github.com/inkfold/geom2d/segment"
	"github.com/inkfold/geom2d/types"
	"github.com/inkfold/geom2d/vector"
)

func uu(n float64) numeric.Scalar { return numeric.FromUserUnits(n) }

func bboxUser(t *testing.T, p Part) (minX, minY, maxX, maxY float64) {
	t.Helper()
	return p.BBox().UserUnits()
}

// Two 4x4 squares overlapping by half merge into a single rectangle of
// width 6, height 4, centered at (1,0).
func TestUnionOverlappingRects(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b = b.Translate(vector.New(uu(2), 0))

	result := a.Union(b)
	minX, minY, maxX, maxY := bboxUser(t, result)
	assert.InDelta(t, -2.0, minX, 0.01)
	assert.InDelta(t, -2.0, minY, 0.01)
	assert.InDelta(t, 4.0, maxX, 0.01)
	assert.InDelta(t, 2.0, maxY, 0.01)

	segs := result.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, types.Solid, segs[0].Kind)
}

// Cutting a 2x2 square out of a 4x4 square leaves an outer 4x4 solid and
// an inner 2x2 hole, both centered at the origin.
func TestDifferenceLeavesHole(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b, err := Rect(uu(2), uu(2))
	require.NoError(t, err)

	result := a.Difference(b)
	segs := result.Segments()
	require.Len(t, segs, 2)

	var solids, holes int
	for _, s := range segs {
		switch s.Kind {
		case types.Solid:
			solids++
		case types.Hole:
			holes++
		}
	}
	assert.Equal(t, 1, solids)
	assert.Equal(t, 1, holes)

	minX, minY, maxX, maxY := bboxUser(t, result)
	assert.InDelta(t, -2.0, minX, 0.01)
	assert.InDelta(t, -2.0, minY, 0.01)
	assert.InDelta(t, 2.0, maxX, 0.01)
	assert.InDelta(t, 2.0, maxY, 0.01)
}

// Intersecting a 4x4 square with a copy shifted 3 to the right keeps the
// 1-wide overlap strip: x in [1,2], y in [-2,2].
func TestIntersectionOfRects(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b = b.Translate(vector.New(uu(3), 0))

	result := a.Intersection(b)
	minX, minY, maxX, maxY := bboxUser(t, result)
	assert.InDelta(t, 1.0, minX, 0.01)
	assert.InDelta(t, -2.0, minY, 0.01)
	assert.InDelta(t, 2.0, maxX, 0.01)
	assert.InDelta(t, 2.0, maxY, 0.01)
}

func TestUnionIdempotent(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	result := a.Union(a)
	minXa, minYa, maxXa, maxYa := bboxUser(t, a)
	minXr, minYr, maxXr, maxYr := bboxUser(t, result)
	assert.InDelta(t, minXa, minXr, 0.01)
	assert.InDelta(t, minYa, minYr, 0.01)
	assert.InDelta(t, maxXa, maxXr, 0.01)
	assert.InDelta(t, maxYa, maxYr, 0.01)
}

func TestUnionCommutative(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	b = b.Translate(vector.New(uu(2), 0))

	ab := a.Union(b)
	ba := b.Union(a)
	minX1, minY1, maxX1, maxY1 := bboxUser(t, ab)
	minX2, minY2, maxX2, maxY2 := bboxUser(t, ba)
	assert.InDelta(t, minX1, minX2, 0.01)
	assert.InDelta(t, minY1, minY2, 0.01)
	assert.InDelta(t, maxX1, maxX2, 0.01)
	assert.InDelta(t, maxY1, maxY2, 0.01)
}

// Self-difference cancels every edge pairwise: the result carries no
// closed segments at all.
func TestDifferenceWithSelfIsEmpty(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	result := a.Difference(a)
	assert.Empty(t, result.Segments())
}

func TestUnionWithEmptyIsIdentity(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	result := a.Union(New())
	minXa, minYa, maxXa, maxYa := bboxUser(t, a)
	minXr, minYr, maxXr, maxYr := bboxUser(t, result)
	assert.Equal(t, minXa, minXr)
	assert.Equal(t, minYa, minYr)
	assert.Equal(t, maxXa, maxXr)
	assert.Equal(t, maxYa, maxYr)
	require.Len(t, result.Segments(), 1)
	assert.Equal(t, types.Solid, result.Segments()[0].Kind)
}

func TestIntersectionWithEmptyIsEmpty(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	assert.Empty(t, a.Intersection(New()).Segments())
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	assert.Equal(t, a.Segments()[0].Kind, a.Invert().Invert().Segments()[0].Kind)
}

func TestPolygonBBoxMatchesPoints(t *testing.T) {
	pts := []point.Point{
		point.New(0, 0), point.New(uu(4), 0), point.New(uu(4), uu(3)), point.New(0, uu(3)), point.New(0, 0),
	}
	p, err := Polygon(pts...)
	require.NoError(t, err)
	minX, minY, maxX, maxY := bboxUser(t, p)
	assert.Equal(t, 0.0, minX)
	assert.Equal(t, 0.0, minY)
	assert.Equal(t, 4.0, maxX)
	assert.Equal(t, 3.0, maxY)
}

func TestRotateThenInverseRotateIsIdentityWithinGridTolerance(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	back := a.Rotate(37).Rotate(-37)
	origBB := a.BBox()
	backBB := back.BBox()
	assert.InDelta(t, float64(origBB.MinX), float64(backBB.MinX), 2)
	assert.InDelta(t, float64(origBB.MaxX), float64(backBB.MaxX), 2)
}

// Align's translation vector is (width-x, height-y) of the bounding box —
// not a naive "move anchor to the origin" translation — so the expected
// bbox below is derived from that formula directly.
func TestAlignCorners(t *testing.T) {
	a, err := Rect(uu(4), uu(2))
	require.NoError(t, err)

	tl, err := a.Align('t', 'l')
	require.NoError(t, err)
	minX, minY, maxX, maxY := bboxUser(t, tl)
	assert.InDelta(t, 4.0, minX, 0.01)
	assert.InDelta(t, 0.0, minY, 0.01)
	assert.InDelta(t, 8.0, maxX, 0.01)
	assert.InDelta(t, 2.0, maxY, 0.01)
}

func TestAlignRejectsInvalidToken(t *testing.T) {
	a, err := Rect(uu(4), uu(2))
	require.NoError(t, err)
	_, err = a.Align('x', 'l')
	assert.Error(t, err)
	_, err = a.Align('t', 'x')
	assert.Error(t, err)
}

func TestCutProducesOpenSegment(t *testing.T) {
	c, err := Cut(point.New(0, 0), point.New(uu(1), uu(1)))
	require.NoError(t, err)
	segs := c.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, types.Open, segs[0].Kind)
}

func TestOffsetGrowsPlusSignBBox(t *testing.T) {
	// A plus sign inflated by 1 grows its bounding box by 1 on every side.
	horiz, err := Rect(uu(10), uu(2))
	require.NoError(t, err)
	vert, err := Rect(uu(2), uu(10))
	require.NoError(t, err)

	plus := horiz.Union(vert)
	offset := plus.Offset(uu(1))

	minX, minY, maxX, maxY := bboxUser(t, offset)
	assert.InDelta(t, -6.0, minX, 0.1)
	assert.InDelta(t, -6.0, minY, 0.1)
	assert.InDelta(t, 6.0, maxX, 0.1)
	assert.InDelta(t, 6.0, maxY, 0.1)
}

// Two unit diamonds, one rotated 45 degrees, union into an eight-pointed
// star: a single solid with no holes.
func TestUnionOfRotatedDiamondsIsStar(t *testing.T) {
	a, err := Circle(uu(1), options.WithFacets(4))
	require.NoError(t, err)
	b := a.Rotate(45)

	result := a.Union(b)
	segs := result.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, types.Solid, segs[0].Kind)
	assert.Equal(t, 8*2, segs[0].Len())

	minX, minY, maxX, maxY := bboxUser(t, result)
	assert.InDelta(t, -1.0, minX, 0.01)
	assert.InDelta(t, -1.0, minY, 0.01)
	assert.InDelta(t, 1.0, maxX, 0.01)
	assert.InDelta(t, 1.0, maxY, 0.01)
}

// The hole cut by a polygon difference carries the Hole tag and starts at
// its lex-min vertex (1,1). The input rings wind counterclockwise; Polygon
// normalizes both to solids before combining.
func TestDifferenceHoleOrientationAndFirstVertex(t *testing.T) {
	outer, err := Polygon(pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4), pt(0, 0))
	require.NoError(t, err)
	inner, err := Polygon(pt(1, 1), pt(3, 1), pt(3, 3), pt(1, 3), pt(1, 1))
	require.NoError(t, err)

	result := outer.Difference(inner)
	segs := result.Segments()
	require.Len(t, segs, 2)

	var hole *segment.Segment
	for i := range segs {
		if segs[i].Kind == types.Hole {
			hole = &segs[i]
		}
	}
	require.NotNil(t, hole)
	assert.Equal(t, pt(1, 1), hole.Points[0])
}

func TestHullOfSquareIsItself(t *testing.T) {
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	hull := a.Hull()
	minX, minY, maxX, maxY := bboxUser(t, hull)
	assert.InDelta(t, -2.0, minX, 0.01)
	assert.InDelta(t, -2.0, minY, 0.01)
	assert.InDelta(t, 2.0, maxX, 0.01)
	assert.InDelta(t, 2.0, maxY, 0.01)
}

func TestShowRecordsPart(t *testing.T) {
	ResetDebugShow()
	a, err := Rect(uu(4), uu(4))
	require.NoError(t, err)
	shown := Show(a)
	assert.Equal(t, a.Segments(), shown.Segments())
	assert.Len(t, DebugShow(), 1)
	ResetDebugShow()
}
