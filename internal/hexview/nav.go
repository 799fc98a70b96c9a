package hexview

import "fmt"

// Navigation commands. These are the host-facing half of the controller:
// they mutate the display configuration and cursor atomically with the
// viewport recompute and emit the same single synchronized update cycle a
// focus change does.

// GoToOffset jumps to an explicit byte offset. Negative or past-end values
// are clamped, not rejected, and the viewport centers the target so a jump
// always lands predictably.
func (c *Controller) GoToOffset(offset int64) {
	c.submit(func() {
		off := c.cursor.MoveTo(offset)
		c.viewport.Recompute(off, c.unit, c.geo, PlaceCenter)
	})
}

// SetWidth changes the unit width. Invalid widths are rejected and the
// prior configuration is retained. The cursor's byte offset is untouched;
// only the derived unit start changes, and the viewport realigns in the
// same cycle before either pane repaints.
func (c *Controller) SetWidth(w int) error {
	next := c.unitCopy()
	next.Width = w
	if err := next.Validate(); err != nil {
		return err
	}
	c.submit(func() {
		c.unit.Width = w
		c.viewport.Recompute(c.cursor.Offset(), c.unit, c.geo, PlaceKeepVisible)
	})
	return nil
}

// SetEndianness changes the byte order. Byte addressing is unaffected, so
// the cursor and viewport stay put; panes still get one notification so the
// numeric pane re-decodes.
func (c *Controller) SetEndianness(e Endianness) error {
	if e != BigEndian && e != LittleEndian {
		return fmt.Errorf("%w: %d", ErrInvalidEndianness, int(e))
	}
	c.submit(func() {
		c.unit.Endianness = e
	})
	return nil
}

// ToggleEndianness flips between big and little endian.
func (c *Controller) ToggleEndianness() {
	if c.State().Unit.Endianness == BigEndian {
		c.SetEndianness(LittleEndian)
	} else {
		c.SetEndianness(BigEndian)
	}
}

// SetBase changes the numeral base units are formatted in.
func (c *Controller) SetBase(b Base) error {
	if b != BaseHex && b != BaseDecimal {
		return fmt.Errorf("%w: %d", ErrInvalidBase, int(b))
	}
	c.submit(func() {
		c.unit.Base = b
	})
	return nil
}

// SetGeometry applies a window resize and keeps the cursor visible.
func (c *Controller) SetGeometry(geo Geometry) {
	c.submit(func() {
		c.geo = geo
		c.viewport.Recompute(c.cursor.Offset(), c.unit, c.geo, PlaceKeepVisible)
	})
}

func (c *Controller) unitCopy() DisplayUnit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unit
}
