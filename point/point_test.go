package point

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/geom2d/numeric"
	"github.com/inkfold/geom2d/vector"
)

func TestAddSub(t *testing.T) {
	p := New(3, 4)
	q := New(1, 2)
	assert.Equal(t, New(4, 6), p.Add(q.Sub(New(0, 0))))
	assert.Equal(t, vector.New(2, 2), p.Sub(q))
}

func TestEq(t *testing.T) {
	assert.True(t, New(1, 2).Eq(New(1, 2)))
	assert.False(t, New(1, 2).Eq(New(1, 3)))
}

func TestLess(t *testing.T) {
	assert.True(t, New(1, 2).Less(New(2, 0)))
	assert.True(t, New(1, 2).Less(New(1, 3)))
	assert.False(t, New(1, 2).Less(New(1, 2)))
}

func TestRotate(t *testing.T) {
	p := New(numeric.Unit, 0)
	pivot := New(0, 0)
	rotated := p.Rotate(pivot, 90)
	assert.Equal(t, New(0, numeric.Unit), rotated)
}

func TestScale(t *testing.T) {
	p := New(2*numeric.Unit, 0)
	ref := New(0, 0)
	assert.Equal(t, New(4*numeric.Unit, 0), p.Scale(ref, 2))
}

func TestMirror(t *testing.T) {
	assert.Equal(t, New(-numeric.Unit, numeric.Unit), New(numeric.Unit, numeric.Unit).Mirror(0))
}

func TestFromUserUnits(t *testing.T) {
	assert.Equal(t, New(numeric.Unit, 2*numeric.Unit), FromUserUnits(1, 2))
}

func TestJSONRoundTrip(t *testing.T) {
	p := New(7, -3)
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var out Point
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, p, out)
}
