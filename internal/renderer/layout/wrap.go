package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Line is one display row produced by Wrap.
type Line struct {
	// Text is the visible content of the row, without line terminators.
	Text string
	// Start is the character offset in the source text of the row's first
	// character.
	Start int
	// Width is the display width of Text.
	Width int
}

// Wrap breaks text into rows no wider than width. Rows break at explicit
// newlines and at Unicode line-break opportunities; a word wider than the
// row is split between grapheme clusters. With trim set, whitespace at the
// start of a soft-wrapped row is dropped. Empty text yields a single empty
// row. A non-positive width yields no rows.
func Wrap(text string, width int, trim bool) []Line {
	if width <= 0 {
		return nil
	}

	w := &wrapper{width: width, trim: trim}
	for i, para := range strings.Split(text, "\n") {
		if i > 0 {
			// The newline belongs to neither row.
			w.offset++
		}
		w.paragraph(para)
	}
	return w.lines
}

type wrapper struct {
	width int
	trim  bool
	lines []Line

	cur      strings.Builder
	curStart int
	curWidth int
	// offset is the character offset of the next unconsumed rune.
	offset int
	// wrapped is set while the current row continues a soft-wrapped one.
	wrapped bool
}

func (w *wrapper) paragraph(text string) {
	w.curStart = w.offset
	w.wrapped = false

	state := -1
	for text != "" {
		var segment string
		var mustBreak bool
		segment, text, mustBreak, state = uniseg.FirstLineSegmentInString(text, state)

		word := strings.TrimRightFunc(segment, unicode.IsSpace)
		if w.curWidth > 0 && w.curWidth+uniseg.StringWidth(word) > w.width {
			w.softBreak()
		}
		w.segment(segment)

		if mustBreak && text != "" {
			w.flush()
			w.wrapped = false
		}
	}
	w.flush()
}

func (w *wrapper) segment(segment string) {
	gstate := -1
	for segment != "" {
		var cluster string
		var gw int
		cluster, segment, gw, gstate = uniseg.FirstGraphemeClusterInString(segment, gstate)
		w.grapheme(cluster, gw)
	}
}

func (w *wrapper) grapheme(cluster string, gw int) {
	if w.curWidth > 0 && w.curWidth+gw > w.width {
		w.softBreak()
	}

	n := utf8.RuneCountInString(cluster)
	if w.trim && w.wrapped && w.curWidth == 0 && isSpace(cluster) {
		w.offset += n
		w.curStart = w.offset
		return
	}

	w.cur.WriteString(cluster)
	w.curWidth += gw
	w.offset += n
}

func (w *wrapper) softBreak() {
	w.flush()
	w.wrapped = true
}

func (w *wrapper) flush() {
	w.lines = append(w.lines, Line{
		Text:  w.cur.String(),
		Start: w.curStart,
		Width: w.curWidth,
	})
	w.cur.Reset()
	w.curWidth = 0
	w.curStart = w.offset
}

func isSpace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CursorPosition maps the character offset cursor onto lines produced by
// Wrap with the same width. It returns the row and display column. A cursor
// that would sit past the right edge moves to the start of the next row.
func CursorPosition(lines []Line, cursor, width int) (row, col int) {
	if len(lines) == 0 || cursor < 0 {
		return 0, 0
	}

	for i := range lines {
		if lines[i].Start > cursor {
			break
		}
		row = i
	}

	line := lines[row]
	n := cursor - line.Start
	for _, r := range line.Text {
		if n == 0 {
			break
		}
		col += uniseg.StringWidth(string(r))
		n--
	}

	if width > 0 && col >= width {
		return row + 1, 0
	}
	return row, col
}

// ScrollOffset returns the first visible row so that row stays inside a
// window of height rows.
func ScrollOffset(row, height int) int {
	if height <= 0 {
		return 0
	}
	return max(0, row-height+1)
}
