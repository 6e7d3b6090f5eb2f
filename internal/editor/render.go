package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/mrcat/internal/document"
)

const Farewell = "Goodbye"

// refreshScreen draws one full frame and flushes it.
func (e *Editor) refreshScreen() error {
	e.term.CursorHide()
	e.term.MoveCursor(0, 0)
	if e.quitting {
		e.term.ClearScreen()
		e.term.Println(Farewell)
	} else {
		e.drawRows()
		e.term.MoveCursor(e.cursor.X, e.cursor.Y)
	}
	e.term.CursorShow()
	return e.term.Flush()
}

func (e *Editor) drawRows() {
	size := e.term.Size()
	for y := 0; y < size.Height-1; y++ {
		if row, ok := e.buf.Row(y); ok {
			e.drawRow(row)
		} else if y == size.Height/3 {
			e.drawWelcome()
		} else {
			e.term.ClearCurrentLine()
			e.term.Println("~")
		}
	}
	// Bottom row carries the key echo.
	e.term.ClearCurrentLine()
	if e.message != "" {
		e.term.Println(e.message)
	}
}

func (e *Editor) drawRow(row document.Row) {
	width := e.term.Size().Width
	e.term.ClearCurrentLine()
	e.term.Println(row.Render(0, width))
}

func (e *Editor) drawWelcome() {
	text := fmt.Sprintf("%s -- Version %s", e.welcome, Version)
	e.term.ClearCurrentLine()
	e.term.Println(welcomeMessage(text, e.term.Size().Width))
}

// welcomeMessage centers text in width columns behind a leading "~".
// The tilde takes one column of the left padding.
func welcomeMessage(text string, width int) string {
	padding := max(width-runewidth.StringWidth(text), 0) / 2
	spaces := strings.Repeat(" ", max(padding-1, 0))
	return runewidth.Truncate("~"+spaces+text, width, "")
}
