package buffer

import "fmt"

// Selection is a range of selected text.
// Anchor is where the selection started; Head is the moving end, which is
// also where the cursor sits. Anchor and Head may be in either order.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Head   Position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	if s.Anchor.Before(s.Head) {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	if s.Anchor.After(s.Head) {
		return s.Anchor
	}
	return s.Head
}

// Normalize returns a forward selection (Anchor <= Head).
// Edit operations consume selections in normalized form.
func (s Selection) Normalize() Selection {
	if s.Anchor.After(s.Head) {
		return Selection{Anchor: s.Head, Head: s.Anchor}
	}
	return s
}

// Extend returns a new selection with the head moved to pos.
// The anchor stays fixed.
func (s Selection) Extend(pos Position) Selection {
	return Selection{Anchor: s.Anchor, Head: pos}
}

// Contains returns true if pos is within the selection extent.
func (s Selection) Contains(pos Position) bool {
	return !pos.Before(s.Start()) && pos.Before(s.End())
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	return fmt.Sprintf("Selection(%s..%s)", s.Anchor, s.Head)
}
