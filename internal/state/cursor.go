package state

const (
	// ScrollMargin is how close to a viewport edge the cursor may get before
	// the list scrolls.
	ScrollMargin = 4

	// ListTop is the first screen row of the entry list. Row 0 holds the
	// header and the last row the status bar.
	ListTop = 2
)

// ListRows returns how many entries fit on a screen of the given height.
func ListRows(height int) int {
	rows := height - ListTop - 1
	if rows < 1 {
		return 1
	}
	return rows
}

// Cursor is the selected row and the index of the first visible row.
type Cursor struct {
	Position int
	Offset   int
}

// Reset moves the cursor to the top of the list.
func (c *Cursor) Reset() {
	c.Position = 0
	c.Offset = 0
}

// SetPosition moves to i and re-centers. Out-of-range indexes are ignored.
func (c *Cursor) SetPosition(i, n, height int) bool {
	if i < 0 || i >= n {
		return false
	}
	c.Position = i
	c.center(height)
	c.keepVisible(height)
	return true
}

// MoveUp steps one row up, wrapping to the last row.
func (c *Cursor) MoveUp(n, height int) {
	if n == 0 {
		return
	}
	c.Position--
	if c.Position < 0 {
		c.Position = n - 1
		c.center(height)
	}
	c.scrollUp()
	c.keepVisible(height)
}

// MoveDown steps one row down, wrapping to the first row.
func (c *Cursor) MoveDown(n, height int) {
	if n == 0 {
		return
	}
	c.Position++
	if c.Position >= n {
		c.Position = 0
		c.center(height)
	}
	c.scrollDown(height)
	c.keepVisible(height)
}

func (c *Cursor) Home(n, height int) {
	c.SetPosition(0, n, height)
}

func (c *Cursor) End(n, height int) {
	c.SetPosition(n-1, n, height)
}

// ClampUp walks the cursor upward until it is back inside a list of n rows.
// An empty list resets it.
func (c *Cursor) ClampUp(n, height int) {
	if n == 0 {
		c.Reset()
		return
	}
	for c.Position >= n {
		c.MoveUp(n, height)
	}
}

// center jumps the viewport so a cursor near the bottom edge sits mid-screen.
func (c *Cursor) center(height int) {
	if c.Position > height-1-ScrollMargin {
		c.Offset = c.Position - height/2
	} else {
		c.Offset = 0
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
}

func (c *Cursor) scrollUp() {
	if c.Position-c.Offset < ScrollMargin && c.Offset > 0 {
		c.Offset--
	}
}

func (c *Cursor) scrollDown(height int) {
	if c.Position-c.Offset+ScrollMargin > height-1-ScrollMargin/2 {
		c.Offset++
	}
}

// keepVisible only matters on very short screens where the margins overlap.
func (c *Cursor) keepVisible(height int) {
	rows := ListRows(height)
	if c.Position < c.Offset {
		c.Offset = c.Position
	}
	if c.Position >= c.Offset+rows {
		c.Offset = c.Position - rows + 1
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
}
