package rectangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/segment"
)

func TestPointsClosedRing(t *testing.T) {
	pts := New(numeric.FromUserUnits(4), numeric.FromUserUnits(2)).Points()
	require.Len(t, pts, 5)
	assert.Equal(t, pts[0], pts[4])
}

func TestPointsCenteredOnOrigin(t *testing.T) {
	w, h := numeric.FromUserUnits(4), numeric.FromUserUnits(2)
	pts := New(w, h).Points()
	for _, p := range pts[:4] {
		assert.InDelta(t, 2.0, absUserUnits(p.X), 1e-9)
		assert.InDelta(t, 1.0, absUserUnits(p.Y), 1e-9)
	}
}

func TestPointsClassifySolid(t *testing.T) {
	pts := New(numeric.FromUserUnits(4), numeric.FromUserUnits(2)).Points()
	s, err := segment.New(pts...)
	require.NoError(t, err)
	assert.Equal(t, "Solid", s.Kind.String())
}

func absUserUnits(s numeric.Scalar) float64 {
	v := s.UserUnits()
	if v < 0 {
		return -v
	}
	return v
}
