package renderer

import "github.com/rivo/uniseg"

// View is the scroll state of the text area. Layout math lives here so
// it can be tested without a terminal.
type View struct {
	// TopLine is the first buffer line on screen.
	TopLine int

	// TabWidth is the distance between tab stops, in cells.
	TabWidth int

	// follow tracks whether the viewport chases the cursor. Wheel
	// scrolling turns it off until the next cursor-driven input.
	follow bool
}

// NewView creates a view with the given tab width.
func NewView(tabWidth int) *View {
	if tabWidth < 1 {
		tabWidth = 1
	}
	return &View{TabWidth: tabWidth, follow: true}
}

// EnsureVisible scrolls the minimum amount needed to bring line into a
// text area of height rows.
func (v *View) EnsureVisible(line, height int) {
	if height < 1 {
		height = 1
	}
	if line < v.TopLine {
		v.TopLine = line
	}
	if line >= v.TopLine+height {
		v.TopLine = line - height + 1
	}
	if v.TopLine < 0 {
		v.TopLine = 0
	}
}

// Follow makes the viewport chase the cursor again.
func (v *View) Follow() {
	v.follow = true
}

// Following reports whether the viewport chases the cursor.
func (v *View) Following() bool {
	return v.follow
}

// Scroll moves the viewport by delta lines, clamped to the buffer, and
// stops following the cursor.
func (v *View) Scroll(delta, lineCount, height int) {
	v.follow = false
	v.TopLine += delta
	max := lineCount - height
	if max < 0 {
		max = 0
	}
	if v.TopLine > max {
		v.TopLine = max
	}
	if v.TopLine < 0 {
		v.TopLine = 0
	}
}

// runeWidth is the display width of one rune at cell x. Tabs advance
// to the next tab stop, so their width depends on x.
func (v *View) runeWidth(r rune, x int) int {
	if r == '\t' {
		return v.TabWidth - x%v.TabWidth
	}
	w := uniseg.StringWidth(string(r))
	if w < 1 {
		w = 1
	}
	return w
}

// ColumnX returns the screen x of rune column col within line.
func (v *View) ColumnX(line string, col int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		x += v.runeWidth(r, x)
	}
	return x
}

// ColumnAt returns the rune column whose cell range contains screen x.
// Positions past the end of the line clamp to the line length.
func (v *View) ColumnAt(line string, x int) int {
	cur := 0
	for i, r := range []rune(line) {
		w := v.runeWidth(r, cur)
		if x < cur+w {
			return i
		}
		cur += w
	}
	return len([]rune(line))
}
