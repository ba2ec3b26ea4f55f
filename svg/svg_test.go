package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/geom2d"
	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/options"
)

func uu(n float64) numeric.Scalar { return numeric.FromUserUnits(n) }

func TestWriteRejectsEmpty(t *testing.T) {
	_, err := Write(nil)
	assert.Error(t, err)
}

func TestWriteEmitsOnePathPerSolid(t *testing.T) {
	a, err := geom2d.Rect(uu(4), uu(4))
	require.NoError(t, err)

	doc, err := Write([]geom2d.Part{a})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, "<path"))
	assert.Contains(t, doc, "<svg")
	assert.Contains(t, doc, "</svg>")
}

func TestWriteGroupsHoleWithItsSolid(t *testing.T) {
	outer, err := geom2d.Rect(uu(4), uu(4))
	require.NoError(t, err)
	inner, err := geom2d.Rect(uu(2), uu(2))
	require.NoError(t, err)

	withHole := outer.Difference(inner)
	doc, err := Write([]geom2d.Part{withHole})
	require.NoError(t, err)
	// A solid with one nested hole is a single path carrying both rings.
	assert.Equal(t, 1, strings.Count(doc, "<path"))
}

func TestWriteLaysOutPartsLeftToRight(t *testing.T) {
	a, err := geom2d.Rect(uu(2), uu(2))
	require.NoError(t, err)
	b, err := geom2d.Rect(uu(2), uu(2))
	require.NoError(t, err)

	doc, err := Write([]geom2d.Part{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(doc, "<path"))
}

func TestWriteAppliesStyle(t *testing.T) {
	a, err := geom2d.Rect(uu(2), uu(2))
	require.NoError(t, err)

	doc, err := Write([]geom2d.Part{a}, options.WithStyle(options.Style{Fill: "red", Stroke: "black"}))
	require.NoError(t, err)
	assert.Contains(t, doc, "fill:red")
	assert.Contains(t, doc, "stroke:black")
}

func TestWriteDrainsDebugShowAndResets(t *testing.T) {
	geom2d.ResetDebugShow()
	a, err := geom2d.Rect(uu(2), uu(2))
	require.NoError(t, err)
	geom2d.Show(a)

	doc, err := Write([]geom2d.Part{a})
	require.NoError(t, err)
	assert.Contains(t, doc, "stroke:red")
	assert.Empty(t, geom2d.DebugShow())

	// A second call with nothing shown must not re-render the overlay.
	doc2, err := Write([]geom2d.Part{a})
	require.NoError(t, err)
	assert.NotContains(t, doc2, "stroke:red")
}
