package editor

import "github.com/kobzarvs/mrcat/internal/terminal"

// Position is the cursor location in viewport cells, not buffer cells.
// X ranges over [0, width] and Y over [0, height]: the cursor may rest one
// column past the last column and one row past the last row.
type Position struct {
	X int
	Y int
}

// Move applies a movement action. Requests past an edge are clamped, never
// rejected. Unknown actions leave the position unchanged.
func (p Position) Move(action string, size terminal.Size) Position {
	switch action {
	case actionMoveUp:
		if p.Y > 0 {
			p.Y--
		}
	case actionMoveDown:
		if p.Y < size.Height {
			p.Y++
		}
	case actionMoveLeft:
		if p.X > 0 {
			p.X--
		}
	case actionMoveRight:
		if p.X < size.Width {
			p.X++
		}
	case actionPageUp:
		p.Y = 0
	case actionPageDown:
		p.Y = size.Height
	case actionLineStart:
		p.X = 0
	case actionLineEnd:
		p.X = size.Width
	}
	return p
}
