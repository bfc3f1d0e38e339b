package editor

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
)

func pipeEditor(t *testing.T) (*Editor, *os.File, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close(); w.Close() })
	out := new(bytes.Buffer)
	ed := New(r, w)
	ed.wout = out
	ed.widthFn = func() int { return 80 }
	return ed, w, out
}

func TestReadLineRaw(t *testing.T) {
	ed, w, out := pipeEditor(t)
	w.WriteString("  foo\n")

	line, err := ed.ReadLine("> ")
	if line != "foo" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "foo")
	}
	if got, want := out.String(), "> foo\n"; got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
}

func TestReadLineRawMultipleLines(t *testing.T) {
	ed, w, _ := pipeEditor(t)
	w.WriteString("bar\nbaz\n")
	w.Close()

	for _, want := range []string{"bar", "baz"} {
		line, err := ed.ReadLine("> ")
		if line != want || err != nil {
			t.Errorf("got (%q, %v), want (%q, nil)", line, err, want)
		}
	}
	if _, err := ed.ReadLine("> "); err != io.EOF {
		t.Errorf("got error %v after the input ended, want io.EOF", err)
	}
}

func TestReadLineRawEOFWithContent(t *testing.T) {
	ed, w, _ := pipeEditor(t)
	w.WriteString("qux")
	w.Close()

	line, err := ed.ReadLine("> ")
	if line != "qux" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "qux")
	}
}

func TestReadLineRawEmptyInput(t *testing.T) {
	ed, w, _ := pipeEditor(t)
	w.Close()

	line, err := ed.ReadLine("> ")
	if line != "" || err != io.EOF {
		t.Errorf("got (%q, %v), want (%q, io.EOF)", line, err, "")
	}
}

func TestReadLineRawLongLine(t *testing.T) {
	ed, w, _ := pipeEditor(t)
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	go func() {
		w.Write(long)
		w.WriteString("\n")
	}()

	line, err := ed.ReadLine("> ")
	if line != string(long) || err != nil {
		t.Errorf("got (%q, %v), want the whole 300-byte line", line, err)
	}
}

// ttyReadLine runs one interactive ReadLine on a fresh pseudo-terminal,
// typing input on the master side once the editor is in raw mode.
func ttyReadLine(t *testing.T, input string, prep func(*Editor)) (string, error) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() { ptmx.Close(); tty.Close() })
	go io.Copy(io.Discard, ptmx)

	ed := New(tty, tty)
	if prep != nil {
		prep(ed)
	}
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := ed.ReadLine("> ")
		ch <- result{line, err}
	}()

	time.Sleep(100 * time.Millisecond)
	if _, err := ptmx.WriteString(input); err != nil {
		t.Fatal(err)
	}
	select {
	case r := <-ch:
		return r.line, r.err
	case <-time.After(5 * time.Second):
		t.Fatal("ReadLine did not return")
		return "", nil
	}
}

func TestReadLineTTY(t *testing.T) {
	line, err := ttyReadLine(t, "hello\r", nil)
	if line != "hello" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "hello")
	}
}

func TestReadLineTTYStripsTrailingWhitespace(t *testing.T) {
	line, err := ttyReadLine(t, "hi \r", nil)
	if line != "hi" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "hi")
	}
}

func TestReadLineTTYEditing(t *testing.T) {
	// Kill "ef" with the point before it, then yank it back at the end.
	line, err := ttyReadLine(t, "abcdef\x1b[D\x1b[D\v\x05\x19\r", nil)
	if line != "abcdef" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "abcdef")
	}
}

func TestReadLineTTYBackspace(t *testing.T) {
	line, err := ttyReadLine(t, "helx\x7flo\r", nil)
	if line != "hello" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "hello")
	}
}

func TestReadLineTTYInterrupt(t *testing.T) {
	line, err := ttyReadLine(t, "doomed\x03", nil)
	if line != "" || err != nil {
		t.Errorf("got (%q, %v), want an empty line and nil error", line, err)
	}
}

func TestReadLineTTYCustomBinding(t *testing.T) {
	var ed *Editor
	line, err := ttyReadLine(t, "\x1b[A\r", func(e *Editor) {
		ed = e
		e.BindSpecial(KeyUp, func([]byte) bool {
			e.SetLine("from history")
			return true
		})
	})
	if line != "from history" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "from history")
	}
	if ed.Line() != "" {
		t.Errorf("line state %q was not released after the read", ed.Line())
	}
}

func TestReadLineTTYMasked(t *testing.T) {
	line, err := ttyReadLine(t, "secret\r", func(e *Editor) {
		e.DisableEcho('*')
	})
	if line != "secret" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "secret")
	}
}

func TestReadLineTTYLengthCap(t *testing.T) {
	line, err := ttyReadLine(t, "abcd\r", func(e *Editor) {
		e.LimitLineLength(3)
	})
	if line != "abc" || err != nil {
		t.Errorf("got (%q, %v), want (%q, nil)", line, err, "abc")
	}
}

func TestReadLineTTYUndecodableInput(t *testing.T) {
	// A byte that cannot start a UTF-8 sequence ends the session like
	// EOF: no line, even if text was already typed.
	line, err := ttyReadLine(t, "ab\xff", nil)
	if line != "" || err != io.EOF {
		t.Errorf("got (%q, %v), want (%q, io.EOF)", line, err, "")
	}
}

func TestReadLineTTYEOF(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() { tty.Close() })

	ed := New(tty, tty)
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := ed.ReadLine("> ")
		ch <- result{line, err}
	}()
	time.Sleep(100 * time.Millisecond)
	ptmx.Close()

	select {
	case r := <-ch:
		if r.line != "" || r.err != io.EOF {
			t.Errorf("got (%q, %v), want (%q, io.EOF)", r.line, r.err, "")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ReadLine did not return")
	}
}
