package buffer

// Direction identifies a cursor movement.
type Direction uint8

// Cursor movement directions.
const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Home:
		return "home"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Action is a single discrete operation applied to a buffer.
// Actions that change text report IsEdit() == true; pure cursor and
// selection motion reports false. The caller uses this to drive the
// document dirty flag.
type Action interface {
	// IsEdit returns true if applying the action can change buffer text.
	IsEdit() bool

	isAction()
}

// InsertChar inserts a single character at the cursor, replacing the
// selection if one exists.
type InsertChar struct {
	Rune rune
}

// InsertNewline splits the current line at the cursor.
type InsertNewline struct{}

// Backspace removes the selection, or the character before the cursor,
// or merges the current line into the previous one.
type Backspace struct{}

// Delete is the forward mirror of Backspace.
type Delete struct{}

// MoveCursor moves the cursor one step in the given direction and clears
// any selection.
type MoveCursor struct {
	Dir Direction
}

// MoveTo places the cursor at Pos (clamped) and clears any selection.
// Emitted for mouse clicks.
type MoveTo struct {
	Pos Position
}

// SelectTo extends the selection head to Pos, anchoring at the current
// cursor when no selection exists.
type SelectTo struct {
	Pos Position
}

// Paste inserts arbitrary text (possibly multi-line) as one atomic edit.
type Paste struct {
	Text string
}

func (InsertChar) IsEdit() bool    { return true }
func (InsertNewline) IsEdit() bool { return true }
func (Backspace) IsEdit() bool     { return true }
func (Delete) IsEdit() bool        { return true }
func (MoveCursor) IsEdit() bool    { return false }
func (MoveTo) IsEdit() bool        { return false }
func (SelectTo) IsEdit() bool      { return false }
func (Paste) IsEdit() bool         { return true }

func (InsertChar) isAction()    {}
func (InsertNewline) isAction() {}
func (Backspace) isAction()     {}
func (Delete) isAction()        {}
func (MoveCursor) isAction()    {}
func (MoveTo) isAction()        {}
func (SelectTo) isAction()      {}
func (Paste) isAction()         {}
