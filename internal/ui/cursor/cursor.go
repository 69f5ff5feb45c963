// Package cursor keeps a scroll window around a selection in a list whose
// selection is owned elsewhere (the palette controller, the page's active
// section).
package cursor

// Cursor tracks the selected position and the first visible item.
// List length and window height are passed to methods because both change
// as the palette filters and the terminal resizes.
type Cursor struct {
	pos    int
	offset int
	margin int // items kept visible above/below the selection
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the selected position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible item.
func (c Cursor) Offset() int {
	return c.offset
}

// Follow moves the selection to pos (clamped) and scrolls the window so it
// stays visible. An empty list resets the cursor.
func (c *Cursor) Follow(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	// Margin can't exceed half the window or the cursor would oscillate
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(start+height, listLen)
	return start, end
}

// Reset moves the cursor and window back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
