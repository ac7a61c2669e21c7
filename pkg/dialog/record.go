package dialog

// Record is the manager's view of one registered dialog.
type Record struct {
	// Active reports whether the dialog is currently open.
	Active bool
	// CloseOnEsc lets ESC close the dialog while it is topmost.
	CloseOnEsc bool
	// OnEscPress runs right before an ESC-triggered close.
	OnEscPress func()
}

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// centered returns the rectangle of a w×h box centered in a width×height area.
func centered(width, height, w, h int) Rect {
	return Rect{
		X:      max(0, (width-w)/2),
		Y:      max(0, (height-h)/2),
		Width:  w,
		Height: h,
	}
}
