// Package terminal puts the terminal in raw mode and paints text rows on it.
//
// A Surface is line oriented: Println writes at the current write position
// and moves it to the start of the next row, the way a cooked terminal would.
// Nothing reaches the terminal until Flush.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	// ErrTerminalInit is returned when the terminal cannot be put in raw mode.
	ErrTerminalInit = errors.New("terminal init failed")
	// ErrIO is returned when reading keys or flushing output fails.
	ErrIO = errors.New("terminal i/o failed")
)

type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when the screen cannot report its dimensions.
var DefaultSize = Size{Width: 80, Height: 24}

type Surface struct {
	screen   tcell.Screen
	style    tcell.Style
	fallback Size

	// write position
	col, row int

	cursorX, cursorY int
	cursorVisible    bool
	closed           bool
}

// New enters raw mode on the controlling terminal. Call Close to restore it.
func New(fallback Size) (*Surface, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("%w: stdin is not a terminal", ErrTerminalInit)
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalInit, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTerminalInit, err)
	}
	return NewSurface(s, fallback), nil
}

// NewSurface wraps an initialized screen.
func NewSurface(s tcell.Screen, fallback Size) *Surface {
	if fallback.Width <= 0 || fallback.Height <= 0 {
		fallback = DefaultSize
	}
	return &Surface{
		screen:        s,
		style:         tcell.StyleDefault,
		fallback:      fallback,
		cursorVisible: true,
	}
}

// Close restores the terminal. Safe to call more than once.
func (t *Surface) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}

func (t *Surface) Size() Size {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return t.fallback
	}
	return Size{Width: w, Height: h}
}

// ReadKey blocks until a key is pressed.
func (t *Surface) ReadKey() (Key, error) {
	for {
		if t.closed {
			return Key{}, fmt.Errorf("%w: terminal closed", ErrIO)
		}
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return Key{}, fmt.Errorf("%w: input stream closed", ErrIO)
		case *tcell.EventError:
			// tcell stops reading input after posting this.
			return Key{}, fmt.Errorf("%w: %v", ErrIO, ev)
		case *tcell.EventKey:
			return DecodeKey(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Surface) CursorHide() {
	t.cursorVisible = false
	t.screen.HideCursor()
}

func (t *Surface) CursorShow() {
	t.cursorVisible = true
	t.screen.ShowCursor(t.cursorX, t.cursorY)
}

// MoveCursor sets both the terminal cursor and the write position.
func (t *Surface) MoveCursor(x, y int) {
	t.cursorX, t.cursorY = x, y
	t.col, t.row = x, y
	if t.cursorVisible {
		t.screen.ShowCursor(x, y)
	}
}

func (t *Surface) ClearScreen() {
	t.screen.Clear()
	t.col, t.row = 0, 0
}

func (t *Surface) ClearCurrentLine() {
	w, _ := t.screen.Size()
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, t.row, ' ', nil, t.style)
	}
}

// Println writes text from the write position, clipped at the right edge,
// then moves to column 0 of the next row.
func (t *Surface) Println(text string) {
	w, _ := t.screen.Size()
	x := t.col
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		t.screen.SetContent(x, t.row, r, nil, t.style)
		x += rw
	}
	t.col = 0
	t.row++
}

// Flush pushes the pending frame to the terminal.
func (t *Surface) Flush() error {
	if t.closed {
		return fmt.Errorf("%w: flush on closed terminal", ErrIO)
	}
	t.screen.Show()
	return nil
}
