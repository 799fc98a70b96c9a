package hexview

// CursorModel owns the single authoritative cursor offset and the optional
// selection anchor. The offset is byte-addressed and may equal the buffer
// size (the "end" position); it is never a function of the unit width.
// Every mutation resolves to exactly one post-clamp offset before anything
// outside the model can observe it.
type CursorModel struct {
	size      int64
	offset    int64
	anchor    int64
	selecting bool
}

func NewCursorModel(size int64) *CursorModel {
	return &CursorModel{size: max(size, 0)}
}

func (c *CursorModel) Offset() int64 { return c.offset }

// MoveTo clamps off to [0, size], clears any selection and returns the
// resolved offset.
func (c *CursorModel) MoveTo(off int64) int64 {
	c.selecting = false
	c.offset = c.clamp(off)
	return c.offset
}

// MoveBy moves the cursor relative to its current position.
func (c *CursorModel) MoveBy(delta int64) int64 {
	return c.MoveTo(c.offset + delta)
}

// Select anchors a selection at anchor and moves the cursor to off. Both
// ends are clamped.
func (c *CursorModel) Select(anchor, off int64) int64 {
	c.selecting = true
	c.anchor = c.clamp(anchor)
	c.offset = c.clamp(off)
	return c.offset
}

// ExtendTo grows the selection toward off, anchoring at the current offset
// when no selection is active.
func (c *CursorModel) ExtendTo(off int64) int64 {
	if !c.selecting {
		return c.Select(c.offset, off)
	}
	return c.Select(c.anchor, off)
}

func (c *CursorModel) ClearSelection() { c.selecting = false }

// Selection returns the normalized selected byte range (start <= end).
func (c *CursorModel) Selection() Selection {
	if !c.selecting {
		return Selection{}
	}
	start, end := c.anchor, c.offset
	if start > end {
		start, end = end, start
	}
	return Selection{Active: true, Start: start, End: end}
}

// Resize re-clamps the cursor after the underlying buffer changed length.
func (c *CursorModel) Resize(size int64) {
	c.size = max(size, 0)
	c.offset = c.clamp(c.offset)
	c.anchor = c.clamp(c.anchor)
}

func (c *CursorModel) clamp(off int64) int64 {
	return min(max(off, 0), c.size)
}
