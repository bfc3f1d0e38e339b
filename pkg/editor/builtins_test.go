package editor

import (
	"strings"
	"testing"
)

func TestBackspaceRemovesCodepoint(t *testing.T) {
	ed, _ := testEditor(80)
	// "e" followed by a combining acute accent is one grapheme of two
	// codepoints; backspace peels off the accent alone.
	ed.InsertText("aé")
	if !ed.backspace(nil) {
		t.Errorf("backspace failed")
	}
	if ed.Line() != "ae" || ed.Point() != 2 {
		t.Errorf("got line %q point %d, want %q point 2", ed.Line(), ed.Point(), "ae")
	}
	if ed.backspace(nil); ed.Line() != "a" {
		t.Errorf("got line %q, want %q", ed.Line(), "a")
	}

	ed.DeleteText(0, ed.end())
	if ed.backspace(nil) {
		t.Errorf("backspace on an empty line succeeded")
	}
}

func TestDeleteForwardRemovesGrapheme(t *testing.T) {
	ed, _ := testEditor(80)
	ed.InsertText("aéx")
	ed.point = 1
	if !ed.deleteForward(nil) {
		t.Errorf("delete failed")
	}
	if ed.Line() != "ax" || ed.Point() != 1 {
		t.Errorf("got line %q point %d, want %q point 1", ed.Line(), ed.Point(), "ax")
	}

	ed.point = ed.end()
	if ed.deleteForward(nil) {
		t.Errorf("delete at the end of the line succeeded")
	}
}

func TestMoveByGrapheme(t *testing.T) {
	ed, _ := testEditor(80)
	ed.InsertText("aéx")
	if ed.moveRight(nil) {
		t.Errorf("move right at the end of the line succeeded")
	}
	ed.moveLeft(nil)
	if ed.Point() != 4 {
		t.Errorf("point %d after move left, want 4", ed.Point())
	}
	ed.moveLeft(nil)
	if ed.Point() != 1 {
		t.Errorf("point %d after second move left, want 1", ed.Point())
	}
	ed.moveRight(nil)
	if ed.Point() != 4 {
		t.Errorf("point %d after move right, want 4", ed.Point())
	}
	ed.point = 0
	if ed.moveLeft(nil) {
		t.Errorf("move left at the start of the line succeeded")
	}
}

func TestKillAndYank(t *testing.T) {
	ed, _ := testEditor(80)
	ed.InsertText("abcdef")
	ed.moveLeft(nil)
	ed.moveLeft(nil)
	ed.killToEnd(nil)
	if ed.Line() != "abcd" || ed.KillRegister() != "ef" {
		t.Errorf("got line %q kill %q, want %q and %q", ed.Line(), ed.KillRegister(), "abcd", "ef")
	}
	ed.startOfLine(nil)
	if !ed.yank(nil) {
		t.Errorf("yank failed")
	}
	if ed.Line() != "efabcd" || ed.Point() != 2 {
		t.Errorf("got line %q point %d, want %q point 2", ed.Line(), ed.Point(), "efabcd")
	}

	// Killing nothing leaves an empty register, and yanking it dings.
	ed.endOfLine(nil)
	ed.killToEnd(nil)
	if ed.yank(nil) {
		t.Errorf("yank with an empty register succeeded")
	}
}

func TestEraseToStart(t *testing.T) {
	ed, _ := testEditor(80)
	ed.InsertText("hello")
	ed.point = 3
	ed.eraseToStart(nil)
	if ed.Line() != "lo" || ed.Point() != 0 {
		t.Errorf("got line %q point %d, want %q point 0", ed.Line(), ed.Point(), "lo")
	}
}

func TestInterrupt(t *testing.T) {
	ed, _ := testEditor(80)
	ed.InsertText("doomed")
	ed.interrupt(nil)
	if ed.Line() != "" {
		t.Errorf("line %q after interrupt, want empty", ed.Line())
	}
	if !ed.done {
		t.Errorf("interrupt did not finish the session")
	}
}

func TestFinishLine(t *testing.T) {
	ed, out := testEditor(80)
	ed.InsertText("done")
	ed.finishLine(nil)
	if !ed.done {
		t.Errorf("finish did not finish the session")
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Errorf("finish did not write a newline, output %q", out.String())
	}
}

func TestClearScreen(t *testing.T) {
	ed, out := testEditor(80)
	ed.prompt = "> "
	ed.InsertText("hello")
	ed.redisplay()
	out.Reset()

	ed.clearScreen(nil)
	got := out.String()
	if !strings.HasPrefix(got, "\033[2J\033[H") {
		t.Errorf("clear wrote %q, want a clear-and-home prefix", got)
	}
	if !strings.HasSuffix(got, "> hello") {
		t.Errorf("clear wrote %q, want a full repaint suffix", got)
	}
}

func TestSelfInsertRespectsCap(t *testing.T) {
	ed, _ := testEditor(80)
	ed.LimitLineLength(2)
	if !ed.selfInsert([]byte("a")) || !ed.selfInsert([]byte("b")) {
		t.Errorf("inserts within the cap failed")
	}
	if ed.selfInsert([]byte("c")) {
		t.Errorf("insert beyond the cap succeeded")
	}
	if ed.Line() != "ab" {
		t.Errorf("got line %q, want %q", ed.Line(), "ab")
	}
}
