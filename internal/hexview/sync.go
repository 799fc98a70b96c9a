package hexview

import (
	"sync"

	"hextex/internal/source"
)

// TableID tags which pane a focus-change request came from.
type TableID int

const (
	TableHex TableID = iota
	TableASCII
)

func (t TableID) String() string {
	if t == TableASCII {
		return "ascii"
	}
	return "hex"
}

// Selection is a normalized selected byte range.
type Selection struct {
	Active     bool
	Start, End int64
}

// ViewState is the single notification payload. Both panes subscribe to the
// same stream and render purely from its latest value; a pane that renders
// from anything else reintroduces the divergence this package exists to
// remove.
type ViewState struct {
	CursorOffset int64
	UnitStart    int64
	Selection    Selection
	Viewport     Viewport
	Unit         DisplayUnit
}

// Subscriber receives every canonical state change.
type Subscriber func(ViewState)

// Controller is the only writer of canonical cursor/viewport state and the
// only origin of update notifications. Each pane's focus-change event is a
// request, not a fact; the controller resolves it against the models and
// rebroadcasts one canonical ViewState to everyone, including the pane the
// request came from.
//
// The controller is either Idle or Applying. Requests arriving while a
// cycle is in flight are coalesced to the most recent one and run after the
// cycle completes, never interleaved. The mutex spans a full
// event-to-rebroadcast cycle for hosts that deliver events off the main
// loop.
type Controller struct {
	mu       sync.Mutex
	src      source.Source
	cursor   *CursorModel
	viewport *ViewportModel
	unit     DisplayUnit
	geo      Geometry

	subs     []Subscriber
	applying bool
	pending  func()
	last     ViewState
}

// NewController builds the session state over src with the given display
// defaults. The unit must validate.
func NewController(src source.Source, geo Geometry, unit DisplayUnit) (*Controller, error) {
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		src:      src,
		cursor:   NewCursorModel(src.Size()),
		viewport: &ViewportModel{},
		unit:     unit,
		geo:      geo,
	}
	c.viewport.Recompute(0, unit, geo, PlaceKeepVisible)
	c.last = c.snapshotLocked()
	return c, nil
}

// Subscribe registers a pane. Subscribers are called in registration order
// with identical payloads.
func (c *Controller) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, s)
}

// State returns the last canonical state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// OnFocusChange funnels a pane's cursor request into the canonical state.
// The offset is clamped, never rejected.
func (c *Controller) OnFocusChange(table TableID, offset int64) {
	c.submit(func() {
		off := c.cursor.MoveTo(offset)
		c.viewport.Recompute(off, c.unit, c.geo, PlaceKeepVisible)
	})
}

// ExtendSelection grows the selection toward offset, anchoring at the
// current cursor when none is active.
func (c *Controller) ExtendSelection(offset int64) {
	c.submit(func() {
		off := c.cursor.ExtendTo(offset)
		c.viewport.Recompute(off, c.unit, c.geo, PlaceKeepVisible)
	})
}

// ClearSelection drops the selection without moving the cursor.
func (c *Controller) ClearSelection() {
	c.submit(func() {
		c.cursor.ClearSelection()
	})
}

// Refresh re-clamps against the current source size and rebroadcasts. The
// host calls this after the buffer content changed under an edit.
func (c *Controller) Refresh() {
	c.submit(func() {
		c.cursor.Resize(c.src.Size())
		c.viewport.Recompute(c.cursor.Offset(), c.unit, c.geo, PlaceKeepVisible)
	})
}

// submit runs one synchronized update cycle: mutate the models, snapshot,
// fan the snapshot out. A cycle already in flight makes the new request the
// single pending one (latest wins); it runs after the broadcast returns.
// A pending cycle that resolves to the state just broadcast is a coalesced
// duplicate and produces no extra notification, which is what stops two
// echo-happy panes from fighting.
func (c *Controller) submit(fn func()) {
	c.mu.Lock()
	if c.applying {
		c.pending = fn
		c.mu.Unlock()
		return
	}
	c.applying = true
	first := true
	for fn != nil {
		fn()
		st := c.snapshotLocked()
		if !first && st == c.last {
			fn, c.pending = c.pending, nil
			continue
		}
		c.last = st
		subs := append([]Subscriber(nil), c.subs...)
		c.mu.Unlock()
		for _, s := range subs {
			s(st)
		}
		c.mu.Lock()
		first = false
		fn, c.pending = c.pending, nil
	}
	c.applying = false
	c.mu.Unlock()
}

func (c *Controller) snapshotLocked() ViewState {
	off := c.cursor.Offset()
	return ViewState{
		CursorOffset: off,
		UnitStart:    c.unit.UnitStart(off),
		Selection:    c.cursor.Selection(),
		Viewport:     c.viewport.Current(),
		Unit:         c.unit,
	}
}
