package terminal

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyChar
	KeyCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEsc
)

// Key is a decoded key press. Rune is set for KeyChar and KeyCtrl only;
// for KeyCtrl it is the lower-case letter. Alt is held separately so
// alt+x never matches a binding for x.
type Key struct {
	Kind KeyKind
	Rune rune
	Alt  bool
}

func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

func Ctrl(r rune) Key {
	return Key{Kind: KeyCtrl, Rune: unicode.ToLower(r)}
}

var keyNames = map[KeyKind]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "del",
	KeyEsc:       "esc",
}

// String is the name used by keymaps, e.g. "ctrl+q", "pgdn", "a", "space",
// "alt+x".
func (k Key) String() string {
	if k.Alt {
		return "alt+" + Key{Kind: k.Kind, Rune: k.Rune}.String()
	}
	switch k.Kind {
	case KeyChar:
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	case KeyUnknown:
		return "unknown"
	}
	if name, ok := keyNames[k.Kind]; ok {
		return name
	}
	return fmt.Sprintf("key%d", int(k.Kind))
}

// DecodeKey maps a tcell key event to a Key. Control letters arrive either
// as legacy control codes or as a rune with ModCtrl; both decode to Ctrl.
func DecodeKey(ev *tcell.EventKey) Key {
	k := decodeKey(ev)
	if ev.Modifiers()&tcell.ModAlt != 0 && k.Kind != KeyUnknown {
		k.Alt = true
	}
	return k
}

func decodeKey(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && unicode.IsLetter(r) {
			return Ctrl(r)
		}
		return Char(r)
	}
	// Tab, Enter and Backspace share codes with Ctrl-I, Ctrl-M and Ctrl-H.
	switch ev.Key() {
	case tcell.KeyUp:
		return Key{Kind: KeyUp}
	case tcell.KeyDown:
		return Key{Kind: KeyDown}
	case tcell.KeyLeft:
		return Key{Kind: KeyLeft}
	case tcell.KeyRight:
		return Key{Kind: KeyRight}
	case tcell.KeyPgUp:
		return Key{Kind: KeyPageUp}
	case tcell.KeyPgDn:
		return Key{Kind: KeyPageDown}
	case tcell.KeyHome:
		return Key{Kind: KeyHome}
	case tcell.KeyEnd:
		return Key{Kind: KeyEnd}
	case tcell.KeyTab:
		return Key{Kind: KeyTab}
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}
	case tcell.KeyDelete:
		return Key{Kind: KeyDelete}
	case tcell.KeyEscape:
		return Key{Kind: KeyEsc}
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Ctrl(rune('a' + int(k-tcell.KeyCtrlA)))
	}
	return Key{Kind: KeyUnknown}
}
