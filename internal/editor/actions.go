package editor

const (
	actionQuit      = "quit"
	actionMoveUp    = "move_up"
	actionMoveDown  = "move_down"
	actionMoveLeft  = "move_left"
	actionMoveRight = "move_right"
	actionPageUp    = "page_up"
	actionPageDown  = "page_down"
	actionLineStart = "line_start"
	actionLineEnd   = "line_end"
)

func isMotionAction(action string) bool {
	switch action {
	case actionMoveUp, actionMoveDown, actionMoveLeft, actionMoveRight,
		actionPageUp, actionPageDown, actionLineStart, actionLineEnd:
		return true
	}
	return false
}
