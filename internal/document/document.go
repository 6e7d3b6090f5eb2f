// Package document holds the text rows the editor paints.
package document

import (
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/kobzarvs/mrcat/internal/logger"
)

const DefaultTabWidth = 4

// Row is one line of text plus its on-screen form: tabs expanded to the
// next tab stop, other control runes shown as a space.
type Row struct {
	text   string
	render string
}

func NewRow(text string) Row {
	return newRow(text, DefaultTabWidth)
}

func newRow(text string, tabWidth int) Row {
	if tabWidth < 1 {
		tabWidth = 1
	}
	var b strings.Builder
	col := 0
	for _, ch := range text {
		switch {
		case ch == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case unicode.IsControl(ch):
			b.WriteByte(' ')
			col++
		default:
			b.WriteRune(ch)
			col += runewidth.RuneWidth(ch)
		}
	}
	return Row{text: text, render: b.String()}
}

// Render returns the part of the row whose display columns fall in
// [start, end). Wide runes crossing either bound are dropped.
func (r Row) Render(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, ch := range r.render {
		w := runewidth.RuneWidth(ch)
		if col >= end {
			break
		}
		if col >= start && col+w <= end {
			b.WriteRune(ch)
		}
		col += w
	}
	return b.String()
}

// Len is the display width of the row.
func (r Row) Len() int {
	return runewidth.StringWidth(r.render)
}

func (r Row) String() string {
	return r.text
}

type Document struct {
	rows []Row
}

// Open loads path into a document. It never fails: an empty path or an
// unreadable file gives an empty document.
func Open(path string, tabWidth int) *Document {
	if path == "" {
		return &Document{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("open document", "path", path, "err", err)
		return &Document{}
	}
	lines := splitLines(string(data))
	doc := &Document{rows: make([]Row, len(lines))}
	for i, line := range lines {
		doc.rows[i] = newRow(line, tabWidth)
	}
	logger.Info("document opened", "path", path, "rows", doc.Len())
	return doc
}

func FromLines(lines ...string) *Document {
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = NewRow(line)
	}
	return &Document{rows: rows}
}

func (d *Document) Row(index int) (Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return Row{}, false
	}
	return d.rows[index], true
}

func (d *Document) Len() int {
	return len(d.rows)
}

func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	data = strings.TrimSuffix(data, "\n")
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
