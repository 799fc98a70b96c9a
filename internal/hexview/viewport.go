package hexview

// Geometry is the table real estate the host gives the model: visible rows
// and raw bytes per row. BytesPerRow must be a multiple of every valid unit
// width so row boundaries stay stable across width changes.
type Geometry struct {
	Rows        int
	BytesPerRow int
}

// Viewport is the visible window over the source. TopOffset is always a
// multiple of the row stride (UnitsPerRow * unit width == BytesPerRow).
type Viewport struct {
	TopOffset   int64
	Rows        int
	UnitsPerRow int
}

// Placement selects how Recompute brings the cursor into view.
type Placement int

const (
	// PlaceKeepVisible leaves TopOffset alone when the cursor's unit is
	// already inside the window, otherwise aligns the unit to the nearest
	// window edge.
	PlaceKeepVisible Placement = iota
	// PlaceCenter puts the cursor's row in the middle of the window, used
	// for explicit jumps so the target always lands predictably.
	PlaceCenter
)

// ViewportModel owns the window. Recompute is the only way it changes, and
// it runs once per event, before either pane repaints; the panes never
// derive their own alignment.
type ViewportModel struct {
	vp Viewport
}

func (m *ViewportModel) Current() Viewport { return m.vp }

// Recompute derives the window from the canonical cursor, the display unit
// and the table geometry. A width change reaches this through the same
// single call, so realignment happens exactly once.
func (m *ViewportModel) Recompute(cursor int64, unit DisplayUnit, geo Geometry, place Placement) Viewport {
	stride := int64(geo.BytesPerRow)
	if stride <= 0 || geo.Rows <= 0 {
		m.vp = Viewport{}
		return m.vp
	}

	cursorRow := unit.UnitStart(cursor) / stride
	topRow := m.vp.TopOffset / stride // realigns any stale offset downward
	rows := int64(geo.Rows)

	switch place {
	case PlaceCenter:
		topRow = max(cursorRow-rows/2, 0)
	default:
		switch {
		case cursorRow < topRow:
			topRow = cursorRow
		case cursorRow >= topRow+rows:
			topRow = cursorRow - rows + 1
		}
	}

	m.vp = Viewport{
		TopOffset:   topRow * stride,
		Rows:        geo.Rows,
		UnitsPerRow: geo.BytesPerRow / unit.Width,
	}
	return m.vp
}
