package terminal

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestSurface(t *testing.T, w, h int) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	surf := NewSurface(s, DefaultSize)
	t.Cleanup(surf.Close)
	return surf, s
}

func screenLine(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

type zeroSizeScreen struct {
	tcell.Screen
}

func (zeroSizeScreen) Size() (int, int) { return 0, 0 }

func TestSizeFallback(t *testing.T) {
	surf := NewSurface(zeroSizeScreen{}, Size{Width: 100, Height: 30})
	if got := surf.Size(); got != (Size{Width: 100, Height: 30}) {
		t.Fatalf("Size = %+v, want 100x30", got)
	}

	surf = NewSurface(zeroSizeScreen{}, Size{})
	if got := surf.Size(); got != DefaultSize {
		t.Fatalf("Size = %+v, want %+v", got, DefaultSize)
	}
}

func TestSizeFromScreen(t *testing.T) {
	surf, _ := newTestSurface(t, 20, 5)
	if got := surf.Size(); got != (Size{Width: 20, Height: 5}) {
		t.Fatalf("Size = %+v, want 20x5", got)
	}
}

func TestPrintlnAdvancesRows(t *testing.T) {
	surf, s := newTestSurface(t, 10, 4)
	surf.MoveCursor(0, 0)
	surf.Println("first")
	surf.Println("second line too long")
	surf.Println("~")
	if err := surf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := screenLine(s, 0); got != "first" {
		t.Fatalf("line0 = %q, want %q", got, "first")
	}
	if got := screenLine(s, 1); got != "second lin" {
		t.Fatalf("line1 = %q, want %q", got, "second lin")
	}
	if got := screenLine(s, 2); got != "~" {
		t.Fatalf("line2 = %q, want %q", got, "~")
	}
}

func TestClearCurrentLine(t *testing.T) {
	surf, s := newTestSurface(t, 10, 3)
	surf.MoveCursor(0, 1)
	surf.Println("garbage")
	surf.MoveCursor(0, 1)
	surf.ClearCurrentLine()
	surf.Println("ok")
	if err := surf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := screenLine(s, 1); got != "ok" {
		t.Fatalf("line1 = %q, want %q", got, "ok")
	}
}

func TestClearScreen(t *testing.T) {
	surf, s := newTestSurface(t, 10, 3)
	surf.Println("a")
	surf.Println("b")
	surf.ClearScreen()
	surf.Println("bye")
	if err := surf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := screenLine(s, 0); got != "bye" {
		t.Fatalf("line0 = %q, want %q", got, "bye")
	}
	if got := screenLine(s, 1); got != "" {
		t.Fatalf("line1 = %q, want empty", got)
	}
}

func TestCursorShowHide(t *testing.T) {
	surf, s := newTestSurface(t, 10, 5)
	surf.CursorHide()
	surf.MoveCursor(3, 2)
	surf.CursorShow()
	if err := surf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	x, y, visible := s.GetCursor()
	if !visible {
		t.Fatalf("cursor not visible")
	}
	if x != 3 || y != 2 {
		t.Fatalf("cursor = (%d,%d), want (3,2)", x, y)
	}

	surf.CursorHide()
	if err := surf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if _, _, visible := s.GetCursor(); visible {
		t.Fatalf("cursor visible after hide")
	}
}

func TestReadKey(t *testing.T) {
	surf, s := newTestSurface(t, 10, 5)
	if err := s.PostEvent(tcell.NewEventResize(10, 5)); err != nil {
		t.Fatalf("post: %v", err)
	}
	if err := s.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); err != nil {
		t.Fatalf("post: %v", err)
	}
	key, err := surf.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if key.Kind != KeyUp {
		t.Fatalf("key = %v, want up", key)
	}
}

func TestReadKeyAfterClose(t *testing.T) {
	surf, _ := newTestSurface(t, 10, 5)
	surf.Close()
	surf.Close()
	if _, err := surf.ReadKey(); !errors.Is(err, ErrIO) {
		t.Fatalf("ReadKey err = %v, want ErrIO", err)
	}
	if err := surf.Flush(); !errors.Is(err, ErrIO) {
		t.Fatalf("Flush err = %v, want ErrIO", err)
	}
}

func TestReadKeyInputError(t *testing.T) {
	surf, s := newTestSurface(t, 10, 5)
	if err := s.PostEvent(tcell.NewEventError(io.EOF)); err != nil {
		t.Fatalf("post: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := surf.ReadKey()
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, ErrIO) {
			t.Fatalf("ReadKey err = %v, want ErrIO", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("ReadKey blocked after input error")
	}
}
