package editor

import (
	"bytes"
	"fmt"
	"strings"

	"lined.dev/pkg/grapheme"
)

// frame records what the last redisplay left on the terminal, so the next
// one can rewrite only what changed. Rows are counted from the row the
// prompt starts on.
type frame struct {
	text     string
	row      int // row where the text ends
	pointRow int // row where the cursor was left
}

func cursorUp(b *bytes.Buffer, n int)      { fmt.Fprintf(b, "\033[%dA", n) }
func cursorDown(b *bytes.Buffer, n int)    { fmt.Fprintf(b, "\033[%dB", n) }
func cursorForward(b *bytes.Buffer, n int) { fmt.Fprintf(b, "\033[%dC", n) }
func eraseLineEnd(b *bytes.Buffer)         { b.WriteString("\033[K") }
func eraseLine(b *bytes.Buffer)            { b.WriteString("\033[2K") }

// Ding rings the terminal bell.
func (ed *Editor) Ding() { ed.wout.Write([]byte{'\a'}) }

func (ed *Editor) crlf() { ed.wout.Write([]byte{'\n'}) }

// ResetLineState forgets what is on the terminal and repaints the prompt
// and line from scratch, for use after something else wrote to the
// terminal.
func (ed *Editor) ResetLineState() {
	ed.frame = nil
	ed.redisplay()
}

// wrapPos advances a (row, col) screen position over s, wrapping grapheme
// by grapheme at width columns.
func wrapPos(s string, width, row, col int) (int, int) {
	for pos := 0; pos < len(s); {
		next := grapheme.NextBoundary(s, pos)
		w := grapheme.WidthAt(s, pos)
		col += w
		if col > width {
			row++
			col = w
		}
		pos = next
	}
	return row, col
}

// displayText derives what the line shows as on the terminal, along with
// the point's offset within it, from the echo mode.
func (ed *Editor) displayText() (string, int) {
	switch ed.echoMode {
	case EchoSubstitute:
		line := ed.Line()
		sub := string(ed.echoRune)
		return strings.Repeat(sub, grapheme.Count(line)),
			grapheme.Count(line[:ed.point]) * len(sub)
	case EchoDisabled:
		return "", 0
	default:
		return ed.Line(), ed.point
	}
}

// redisplay brings the terminal in sync with the line state. It diffs the
// displayed text against the last frame, rewrites from the first changed
// grapheme onward, and repositions the cursor at the point. Everything is
// flushed in a single write.
func (ed *Editor) redisplay() {
	width := ed.termWidth()
	promptRow, promptCol := wrapPos(ed.prompt, width, 0, 0)
	text, point := ed.displayText()
	end := len(text)

	out := new(bytes.Buffer)
	keep := 0
	if last := ed.frame; last != nil {
		for keep < end {
			next := grapheme.NextBoundary(text, keep)
			if next > len(last.text) || text[keep:next] != last.text[keep:next] {
				break
			}
			keep = next
		}
		keepRow, keepCol := wrapPos(text[:keep], width, promptRow, promptCol)
		if keep > 0 && keepCol == width {
			// Never keep an empty last row; whether the terminal has
			// wrapped yet at the edge is not knowable, so back off one
			// grapheme and rewrite it.
			keep = grapheme.PrevBoundary(text, keep)
			keepRow, keepCol = wrapPos(text[:keep], width, promptRow, promptCol)
		}
		out.WriteString("\r")
		if last.row > last.pointRow {
			cursorDown(out, last.row-last.pointRow)
		} else if last.row < last.pointRow {
			cursorUp(out, last.pointRow-last.row)
		}
		for i := keepRow; i < last.row; i++ {
			eraseLine(out)
			cursorUp(out, 1)
		}
		if keepCol > 0 {
			cursorForward(out, keepCol)
		}
		eraseLineEnd(out)
	} else {
		out.WriteString(ed.prompt)
	}
	out.WriteString(text[keep:])

	row, _ := wrapPos(text, width, promptRow, promptCol)
	pointRow, pointCol := wrapPos(text[:point], width, promptRow, promptCol)
	if pointCol == width ||
		(point < end && pointCol+grapheme.WidthAt(text, point) > width) {
		pointRow++
		pointCol = 0
	}
	if row < pointRow {
		// The text ends exactly at the right edge, so the terminal has not
		// committed to the wrap; force it.
		out.WriteString("\n")
	}
	if end > point {
		if row > pointRow {
			cursorUp(out, row-pointRow)
		}
		out.WriteString("\r")
		if pointCol > 0 {
			cursorForward(out, pointCol)
		}
	}
	ed.frame = &frame{text: text, row: row, pointRow: pointRow}
	ed.wout.Write(out.Bytes())
}
