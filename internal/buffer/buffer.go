package buffer

import "strings"

// Buffer holds the text being edited as a sequence of lines, plus the
// cursor and an optional selection. A buffer always contains at least one
// (possibly empty) line. Buffer is not safe for concurrent use; the editor
// applies exactly one action at a time.
type Buffer struct {
	lines     []string
	cursor    Position
	selection Selection
	selected  bool
}

// New creates an empty buffer with the cursor at (0,0).
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromString creates a buffer with initial content.
// Line endings are normalized to LF.
func FromString(s string) *Buffer {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return &Buffer{lines: strings.Split(s, "\n")}
}

// Text returns the full buffer content joined with LF.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line i without its terminator.
// Out-of-range lines return "".
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineLen returns the length of line i in runes.
func (b *Buffer) LineLen(i int) int {
	return len([]rune(b.Line(i)))
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// Selection returns the current selection, if any.
func (b *Buffer) Selection() (Selection, bool) {
	return b.selection, b.selected
}

// IsEmpty returns true if the buffer contains no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// Apply performs a single action and returns the resulting cursor
// position. Apply never panics: out-of-range positions are clamped and
// impossible edits (backspace at document start, delete at document end)
// are no-ops that still report the cursor.
func (b *Buffer) Apply(a Action) Position {
	switch act := a.(type) {
	case InsertChar:
		b.insertText(string(act.Rune))
	case InsertNewline:
		b.insertText("\n")
	case Backspace:
		b.backspace()
	case Delete:
		b.deleteForward()
	case MoveCursor:
		b.move(act.Dir)
	case MoveTo:
		b.moveTo(act.Pos)
	case SelectTo:
		b.selectTo(act.Pos)
	case Paste:
		b.insertText(act.Text)
	}
	return b.cursor
}

// clamp returns pos adjusted to the nearest valid buffer position.
func (b *Buffer) clamp(pos Position) Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(b.lines) {
		pos.Line = len(b.lines) - 1
	}
	if pos.Column < 0 {
		pos.Column = 0
	}
	if n := b.LineLen(pos.Line); pos.Column > n {
		pos.Column = n
	}
	return pos
}

// insertText inserts text at the cursor, first deleting the selection if
// one exists (replace semantics). Newlines in text split lines. Used by
// InsertChar, InsertNewline, and Paste.
func (b *Buffer) insertText(text string) {
	if b.selected {
		b.deleteSelection()
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	line := []rune(b.lines[b.cursor.Line])
	before := string(line[:b.cursor.Column])
	after := string(line[b.cursor.Column:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.lines[b.cursor.Line] = before + parts[0] + after
		b.cursor.Column += len([]rune(parts[0]))
		return
	}

	// Multi-line insert: first part joins the head of the current line,
	// last part is followed by its tail.
	inserted := make([]string, len(parts))
	inserted[0] = before + parts[0]
	copy(inserted[1:], parts[1:])
	lastLen := len([]rune(parts[len(parts)-1]))
	inserted[len(inserted)-1] += after

	newLines := make([]string, 0, len(b.lines)+len(parts)-1)
	newLines = append(newLines, b.lines[:b.cursor.Line]...)
	newLines = append(newLines, inserted...)
	newLines = append(newLines, b.lines[b.cursor.Line+1:]...)
	b.lines = newLines

	b.cursor = Position{
		Line:   b.cursor.Line + len(parts) - 1,
		Column: lastLen,
	}
}

// deleteSelection removes the selected text and collapses the cursor to
// the selection start.
func (b *Buffer) deleteSelection() {
	sel := b.selection.Normalize()
	start, end := b.clamp(sel.Anchor), b.clamp(sel.Head)

	startLine := []rune(b.lines[start.Line])
	endLine := []rune(b.lines[end.Line])
	merged := string(startLine[:start.Column]) + string(endLine[end.Column:])

	newLines := make([]string, 0, len(b.lines)-(end.Line-start.Line))
	newLines = append(newLines, b.lines[:start.Line]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, b.lines[end.Line+1:]...)
	b.lines = newLines

	b.cursor = start
	b.selected = false
	b.selection = Selection{}
}

// backspace removes the selection, the character before the cursor, or
// merges into the previous line. No-op at (0,0).
func (b *Buffer) backspace() {
	if b.selected {
		b.deleteSelection()
		return
	}

	switch {
	case b.cursor.Column > 0:
		line := []rune(b.lines[b.cursor.Line])
		b.lines[b.cursor.Line] = string(line[:b.cursor.Column-1]) + string(line[b.cursor.Column:])
		b.cursor.Column--
	case b.cursor.Line > 0:
		prevLen := b.LineLen(b.cursor.Line - 1)
		b.lines[b.cursor.Line-1] += b.lines[b.cursor.Line]
		b.lines = append(b.lines[:b.cursor.Line], b.lines[b.cursor.Line+1:]...)
		b.cursor = Position{Line: b.cursor.Line - 1, Column: prevLen}
	}
}

// deleteForward removes the selection, the character at the cursor, or
// merges the next line into the current one. No-op at document end.
func (b *Buffer) deleteForward() {
	if b.selected {
		b.deleteSelection()
		return
	}

	line := []rune(b.lines[b.cursor.Line])
	switch {
	case b.cursor.Column < len(line):
		b.lines[b.cursor.Line] = string(line[:b.cursor.Column]) + string(line[b.cursor.Column+1:])
	case b.cursor.Line < len(b.lines)-1:
		b.lines[b.cursor.Line] += b.lines[b.cursor.Line+1]
		b.lines = append(b.lines[:b.cursor.Line+1], b.lines[b.cursor.Line+2:]...)
	}
}

// move moves the cursor one step and clears the selection.
func (b *Buffer) move(dir Direction) {
	b.selected = false
	b.selection = Selection{}

	switch dir {
	case Left:
		if b.cursor.Column > 0 {
			b.cursor.Column--
		} else if b.cursor.Line > 0 {
			b.cursor = Position{Line: b.cursor.Line - 1, Column: b.LineLen(b.cursor.Line - 1)}
		}
	case Right:
		if b.cursor.Column < b.LineLen(b.cursor.Line) {
			b.cursor.Column++
		} else if b.cursor.Line < len(b.lines)-1 {
			b.cursor = Position{Line: b.cursor.Line + 1, Column: 0}
		}
	case Up:
		if b.cursor.Line > 0 {
			b.cursor = b.clamp(Position{Line: b.cursor.Line - 1, Column: b.cursor.Column})
		}
	case Down:
		if b.cursor.Line < len(b.lines)-1 {
			b.cursor = b.clamp(Position{Line: b.cursor.Line + 1, Column: b.cursor.Column})
		}
	case Home:
		b.cursor.Column = 0
	case End:
		b.cursor.Column = b.LineLen(b.cursor.Line)
	}
}

// moveTo places the cursor at pos, clamped, dropping any selection.
func (b *Buffer) moveTo(pos Position) {
	b.selected = false
	b.selection = Selection{}
	b.cursor = b.clamp(pos)
}

// selectTo extends the selection head to pos, anchoring at the current
// cursor when no selection exists. The cursor follows the head.
func (b *Buffer) selectTo(pos Position) {
	pos = b.clamp(pos)
	if !b.selected {
		b.selection = NewSelection(b.cursor, pos)
		b.selected = true
	} else {
		b.selection = b.selection.Extend(pos)
	}
	b.cursor = pos
	if b.selection.IsEmpty() {
		b.selected = false
		b.selection = Selection{}
	}
}
