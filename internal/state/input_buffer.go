package state

// InputBuffer is the single-line editor behind the search, rename and create
// prompts. The cursor is a rune index in [0, Len()].
type InputBuffer struct {
	text   []rune
	cursor int
}

// Reset empties the buffer.
func (b *InputBuffer) Reset() {
	b.text = b.text[:0]
	b.cursor = 0
}

// Seed replaces the contents with s and puts the cursor at the end.
func (b *InputBuffer) Seed(s string) {
	b.text = []rune(s)
	b.cursor = len(b.text)
}

func (b *InputBuffer) String() string {
	return string(b.text)
}

func (b *InputBuffer) Len() int {
	return len(b.text)
}

func (b *InputBuffer) Cursor() int {
	return b.cursor
}

// Insert adds r at the cursor and advances past it.
func (b *InputBuffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// Backspace removes the rune before the cursor.
func (b *InputBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.cursor--
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// Delete removes the rune under the cursor.
func (b *InputBuffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

// Clear empties the buffer, like Reset, bound to ctrl-x.
func (b *InputBuffer) Clear() {
	b.Reset()
}

// MoveCursor moves by direction: "left", "right", "home" or "end".
func (b *InputBuffer) MoveCursor(direction string) {
	switch direction {
	case "left":
		if b.cursor > 0 {
			b.cursor--
		}
	case "right":
		if b.cursor < len(b.text) {
			b.cursor++
		}
	case "home":
		b.cursor = 0
	case "end":
		b.cursor = len(b.text)
	}
}
