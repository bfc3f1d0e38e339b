package editor

import (
	"lined.dev/pkg/grapheme"
)

func ctrl(c byte) string { return string([]byte{c & 0x1f}) }

// bindDefaults installs the stock key bindings: self-insertion for every
// byte from space up, the usual control keys, and the arrow, home, end and
// delete escape sequences. Up and down are left unbound for embedders to
// attach history to.
func (ed *Editor) bindDefaults() {
	for i := 0x20; i < 0x100; i++ {
		ed.Bind(string([]byte{byte(i)}), ed.selfInsert)
	}
	ed.Bind("\r", ed.finishLine)
	ed.Bind("\n", ed.finishLine)
	ed.Bind(ctrl('C'), ed.interrupt)
	ed.Bind("\x7f", ed.backspace)
	ed.Bind(ctrl('H'), ed.backspace)
	ed.Bind(ctrl('D'), ed.deleteForward)
	ed.Bind(ctrl('L'), ed.clearScreen)
	ed.Bind(ctrl('U'), ed.eraseToStart)
	ed.Bind(ctrl('A'), ed.startOfLine)
	ed.Bind(ctrl('E'), ed.endOfLine)
	ed.Bind(ctrl('K'), ed.killToEnd)
	ed.Bind(ctrl('Y'), ed.yank)
	ed.BindSpecial(KeyLeft, ed.moveLeft)
	ed.BindSpecial(KeyRight, ed.moveRight)
	ed.BindSpecial(KeyHome, ed.startOfLine)
	ed.BindSpecial(KeyEnd, ed.endOfLine)
	ed.BindSpecial(KeyDelete, ed.deleteForward)
	// Absorb Insert so it neither inserts its sequence nor leaves residue.
	ed.BindSpecial(KeyInsert, nil)
}

func (ed *Editor) selfInsert(key []byte) bool {
	return ed.InsertText(string(key))
}

func (ed *Editor) finishLine([]byte) bool {
	ed.crlf()
	ed.done = true
	return true
}

// interrupt discards the line. The session still finishes normally, with
// an empty line rather than no line.
func (ed *Editor) interrupt([]byte) bool {
	ed.DeleteText(0, ed.end())
	ed.done = true
	return true
}

func (ed *Editor) startOfLine([]byte) bool {
	ed.point = 0
	return true
}

func (ed *Editor) endOfLine([]byte) bool {
	ed.point = ed.end()
	return true
}

func (ed *Editor) moveLeft([]byte) bool {
	if ed.point <= 0 {
		return false
	}
	ed.point = grapheme.PrevBoundary(ed.Line(), ed.point)
	return true
}

func (ed *Editor) moveRight([]byte) bool {
	if ed.point >= ed.end() {
		return false
	}
	ed.point = grapheme.NextBoundary(ed.Line(), ed.point)
	return true
}

// backspace deletes one codepoint before the point, so a combining mark
// can be removed without taking its base character with it.
func (ed *Editor) backspace([]byte) bool {
	if ed.point <= 0 {
		return false
	}
	end := ed.point
	ed.point = grapheme.PrevRune(ed.Line(), ed.point)
	ed.DeleteText(ed.point, end)
	return true
}

// deleteForward deletes the whole grapheme after the point.
func (ed *Editor) deleteForward([]byte) bool {
	if ed.point >= ed.end() {
		return false
	}
	ed.DeleteText(ed.point, grapheme.NextBoundary(ed.Line(), ed.point))
	return true
}

func (ed *Editor) eraseToStart([]byte) bool {
	ed.DeleteText(0, ed.point)
	return true
}

func (ed *Editor) killToEnd([]byte) bool {
	ed.kill = ed.Line()[ed.point:]
	ed.DeleteText(ed.point, ed.end())
	return true
}

func (ed *Editor) yank([]byte) bool {
	if ed.kill == "" {
		return false
	}
	return ed.InsertText(ed.kill)
}

func (ed *Editor) clearScreen([]byte) bool {
	ed.wout.Write([]byte("\033[2J\033[H"))
	ed.ResetLineState()
	return true
}
