package editor

import (
	"github.com/kobzarvs/mrcat/internal/config"
	"github.com/kobzarvs/mrcat/internal/document"
	"github.com/kobzarvs/mrcat/internal/logger"
	"github.com/kobzarvs/mrcat/internal/terminal"
)

const Version = "0.1.0"

// Terminal is the surface the editor paints on and reads keys from.
type Terminal interface {
	Size() terminal.Size
	ReadKey() (terminal.Key, error)
	CursorHide()
	CursorShow()
	MoveCursor(x, y int)
	ClearScreen()
	ClearCurrentLine()
	Println(text string)
	Flush() error
}

// Buffer gives the text for a row, or false when the row does not exist.
type Buffer interface {
	Row(index int) (document.Row, bool)
}

type Editor struct {
	term    Terminal
	buf     Buffer
	keymap  map[string]string
	welcome string
	keyEcho bool

	cursor   Position
	quitting bool
	message  string // last unrecognised key, shown on the bottom row
}

func New(cfg config.Config, term Terminal, buf Buffer) *Editor {
	keymap := make(map[string]string, len(cfg.Keymap))
	for k, v := range cfg.Keymap {
		keymap[k] = v
	}
	return &Editor{
		term:    term,
		buf:     buf,
		keymap:  keymap,
		welcome: cfg.Editor.Welcome,
		keyEcho: cfg.Editor.KeyEcho != config.KeyEchoOff,
	}
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Position {
	return e.cursor
}

// Run paints a frame, then reads and handles one key, until quit.
// A terminal I/O error clears the screen and is returned.
func (e *Editor) Run() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return e.die(err)
		}
		if e.quitting {
			logger.Info("quit")
			return nil
		}
		if err := e.processKeypress(); err != nil {
			return e.die(err)
		}
	}
}

func (e *Editor) processKeypress() error {
	key, err := e.term.ReadKey()
	if err != nil {
		return err
	}
	e.HandleKey(key)
	return nil
}

// HandleKey applies a single key to the editor state.
func (e *Editor) HandleKey(key terminal.Key) {
	name := key.String()
	action := e.keymap[name]
	switch {
	case action == actionQuit:
		e.quitting = true
	case isMotionAction(action):
		e.message = ""
		e.cursor = e.cursor.Move(action, e.term.Size())
	default:
		logger.Debug("key pressed", "key", name)
		if e.keyEcho {
			e.message = "Key Pressed: " + name
		}
	}
}

func (e *Editor) die(err error) error {
	logger.Error("terminal failure", "err", err)
	e.term.ClearScreen()
	_ = e.term.Flush()
	return err
}
