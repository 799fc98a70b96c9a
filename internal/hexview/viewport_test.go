package hexview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testGeo = Geometry{Rows: 4, BytesPerRow: 16}

func TestRecomputeStability(t *testing.T) {
	m := &ViewportModel{}
	u := DisplayUnit{Width: 1}

	vp := m.Recompute(0, u, testGeo, PlaceKeepVisible)
	assert.Equal(t, int64(0), vp.TopOffset)

	// cursor stays inside the window: the window must not move
	vp = m.Recompute(40, u, testGeo, PlaceKeepVisible)
	assert.Equal(t, int64(0), vp.TopOffset)
}

func TestRecomputeScroll(t *testing.T) {
	m := &ViewportModel{}
	u := DisplayUnit{Width: 1}
	m.Recompute(0, u, testGeo, PlaceKeepVisible)

	// moved below the window: cursor row lands on the bottom row
	vp := m.Recompute(64, u, testGeo, PlaceKeepVisible)
	assert.Equal(t, int64(16), vp.TopOffset)

	// moved back above: cursor row lands on the top row
	vp = m.Recompute(0, u, testGeo, PlaceKeepVisible)
	assert.Equal(t, int64(0), vp.TopOffset)
}

func TestRecomputeCenter(t *testing.T) {
	m := &ViewportModel{}
	u := DisplayUnit{Width: 1}

	vp := m.Recompute(160, u, testGeo, PlaceCenter)
	// cursor row 10, centered in 4 rows => top row 8
	assert.Equal(t, int64(128), vp.TopOffset)

	vp = m.Recompute(0, u, testGeo, PlaceCenter)
	assert.Equal(t, int64(0), vp.TopOffset)
}

func TestTopOffsetRowAligned(t *testing.T) {
	m := &ViewportModel{}
	u := DisplayUnit{Width: 1}

	for _, cursor := range []int64{0, 7, 100, 1000, 12345} {
		vp := m.Recompute(cursor, u, testGeo, PlaceKeepVisible)
		assert.Zero(t, vp.TopOffset%int64(testGeo.BytesPerRow),
			"TopOffset %d not row aligned for cursor %d", vp.TopOffset, cursor)
	}
}

func TestRecomputeWidthChange(t *testing.T) {
	m := &ViewportModel{}

	m.Recompute(100, DisplayUnit{Width: 1}, testGeo, PlaceKeepVisible)
	before := m.Current()
	assert.Equal(t, 16, before.UnitsPerRow)

	// a width change recomputes the unit columns and keeps the cursor's
	// byte visible, in one pass
	vp := m.Recompute(100, DisplayUnit{Width: 4}, testGeo, PlaceKeepVisible)
	assert.Equal(t, 4, vp.UnitsPerRow)
	assert.Zero(t, vp.TopOffset%int64(testGeo.BytesPerRow))
	assert.LessOrEqual(t, vp.TopOffset, int64(100))
	assert.Greater(t, vp.TopOffset+int64(testGeo.Rows*testGeo.BytesPerRow), int64(100))
}

func TestRecomputeDegenerateGeometry(t *testing.T) {
	m := &ViewportModel{}
	vp := m.Recompute(50, DisplayUnit{Width: 1}, Geometry{}, PlaceKeepVisible)
	assert.Equal(t, Viewport{}, vp)
}
