// Package editor implements an interactive line editor for terminals. It
// reads raw terminal input, maintains an editable line with a cursor, and
// incrementally redraws the terminal to reflect edits. Keys are dispatched
// through a prefix tree over raw byte sequences, so both single control
// bytes and multi-byte escape sequences can be bound to editing actions.
package editor

import (
	"bufio"
	"errors"
	"io"
	"os"

	"lined.dev/pkg/errutil"
	"lined.dev/pkg/grapheme"
	"lined.dev/pkg/logutil"
	"lined.dev/pkg/sys"
)

var logger = logutil.GetLogger("[editor] ")

var errDecode = errors.New("unable to decode input")

const (
	defaultWidth = 80
	rawChunkSize = 80
)

// EchoMode selects how the edited line is shown on the terminal.
type EchoMode int

const (
	// EchoEnabled shows the line as typed.
	EchoEnabled EchoMode = iota
	// EchoSubstitute shows one substitution character per grapheme.
	EchoSubstitute
	// EchoDisabled shows nothing, regardless of the line content.
	EchoDisabled
)

// Editor is a line editor bound to an input and an output file. It may be
// reused for many ReadLine calls; the keymap, the kill register and the
// record of what is on the terminal persist across calls, while the line
// state is reset for each call.
//
// An Editor must only be used from one goroutine at a time.
type Editor struct {
	in  *os.File
	out *os.File
	// Redisplay target. Equal to out except in tests.
	wout io.Writer
	// Buffered reader for the non-interactive path. Never used on the
	// interactive path, which must not read ahead of the dispatcher.
	raw *bufio.Reader

	interactive bool
	root        *keymapNode

	prompt string
	// Owned line storage. When external is in effect the edited line is a
	// borrowed string instead and buf is untouched until the first
	// mutation copies the borrowed line in (see promote).
	buf         []byte
	external    string
	hasExternal bool
	point       int
	maxLineLen  int
	kill        string
	done        bool

	echoMode EchoMode
	echoRune rune

	frame   *frame
	widthFn func() int
}

// New creates an Editor reading from in and writing to out. Whether the
// session is interactive is fixed here, from whether in is a terminal.
func New(in, out *os.File) *Editor {
	ed := &Editor{
		in:          in,
		out:         out,
		wout:        out,
		interactive: sys.IsATTY(in.Fd()),
		root:        newKeymapNode(),
	}
	ed.bindDefaults()
	return ed
}

// Line returns the line being edited.
func (ed *Editor) Line() string {
	if ed.hasExternal {
		return ed.external
	}
	return string(ed.buf)
}

// Point returns the cursor's byte offset within the line.
func (ed *Editor) Point() int { return ed.point }

// KillRegister returns the most recently killed text.
func (ed *Editor) KillRegister() string { return ed.kill }

// Done makes the current ReadLine call return after the running handler
// returns.
func (ed *Editor) Done() { ed.done = true }

// EnableEcho makes the edited line show as typed.
func (ed *Editor) EnableEcho() { ed.echoMode = EchoEnabled }

// DisableEcho stops the edited line from showing as typed: each grapheme
// shows as sub instead, or as nothing at all if sub is 0.
func (ed *Editor) DisableEcho(sub rune) {
	if sub == 0 {
		ed.echoMode = EchoDisabled
	} else {
		ed.echoMode = EchoSubstitute
		ed.echoRune = sub
	}
}

// LimitLineLength caps the line length at n bytes; 0 removes the cap. A
// capped editor allocates its buffer once at the full size, and inserts
// that would exceed the cap fail with a bell.
func (ed *Editor) LimitLineLength(n int) {
	if n < 0 {
		n = 0
	}
	ed.maxLineLen = n
}

// ReadLine reads one line from the editor's input, with the given prompt.
// When the input is a terminal, the terminal is put into raw mode for the
// duration of the call and the line is edited interactively; otherwise
// input is consumed line by line with no key dispatch.
//
// The returned error is nil for any line actually read, including an empty
// one; io.EOF means the input ended (or could not be decoded) with no line
// to deliver.
func (ed *Editor) ReadLine(prompt string) (string, error) {
	ed.reset(prompt)
	defer ed.release()

	var line string
	var err error
	if ed.interactive {
		line, err = ed.readTTY()
	} else {
		line, err = ed.readRaw()
	}
	if err != nil || line == "" {
		// Make sure we are not left on the prompt line.
		ed.crlf()
	}
	return line, err
}

func (ed *Editor) reset(prompt string) {
	ed.prompt = prompt
	ed.done = false
	ed.point = 0
	ed.buf = nil
	ed.hasExternal = false
}

func (ed *Editor) release() {
	ed.buf = nil
	ed.hasExternal = false
	ed.prompt = ""
}

// readTTY runs the interactive session loop: redisplay, read one
// codepoint, dispatch. The terminal mode is restored on every return path.
func (ed *Editor) readTTY() (line string, err error) {
	restore, err := setup(ed.in)
	if err != nil {
		return "", err
	}
	defer func() { err = errutil.Multi(err, restore()) }()

	ed.frame = nil
	for !ed.done {
		ed.redisplay()
		key, kerr := ed.readKey()
		if kerr != nil {
			if kerr != io.EOF {
				logger.Println("terminating read:", kerr)
			}
			// The input ended or turned undecodable; deliver no line.
			return "", io.EOF
		}
		ed.handleKey(key)
		if ed.done {
			// Strip a single trailing whitespace byte, if any.
			if end := ed.end(); end > 0 && isSpaceByte(ed.Line()[end-1]) {
				ed.DeleteText(end-1, end)
			}
		}
	}
	return ed.Line(), nil
}

// readRaw consumes one line from a non-interactive input in fixed-size
// chunks, inserting and echoing each chunk. No escape-sequence
// interpretation happens on this path.
func (ed *Editor) readRaw() (string, error) {
	ed.frame = nil
	if ed.raw == nil {
		ed.raw = bufio.NewReader(ed.in)
	}

	sawEOF := false
	for {
		chunk, sawNewline, err := ed.readRawChunk()
		s := chunk
		if ed.point == 0 {
			for len(s) > 0 && isSpaceByte(s[0]) {
				s = s[1:]
			}
		}
		if len(s) > 0 {
			ed.InsertText(string(s))
			ed.redisplay()
		}
		if err != nil {
			sawEOF = true
			break
		}
		if sawNewline {
			break
		}
	}
	if sawEOF && ed.end() == 0 {
		return "", io.EOF
	}
	ed.crlf()
	ed.done = true
	return ed.Line(), nil
}

// readRawChunk reads up to rawChunkSize-1 bytes, stopping early at a line
// terminator, which is consumed but not returned.
func (ed *Editor) readRawChunk() (chunk []byte, newline bool, err error) {
	for len(chunk) < rawChunkSize-1 {
		b, rerr := ed.raw.ReadByte()
		if rerr != nil {
			return chunk, false, io.EOF
		}
		if b == '\r' || b == '\n' {
			return chunk, true, nil
		}
		chunk = append(chunk, b)
	}
	return chunk, false, nil
}

// readKey reads one full codepoint, blocking for the leading byte and for
// however many continuation bytes it declares.
func (ed *Editor) readKey() ([]byte, error) {
	b, err := ed.readByte()
	if err != nil {
		return nil, err
	}
	n := grapheme.RuneLen(b)
	if n == 0 {
		return nil, errDecode
	}
	key := make([]byte, 1, n)
	key[0] = b
	for len(key) < n {
		b, err := ed.readByte()
		if err != nil {
			return nil, err
		}
		key = append(key, b)
	}
	if !grapheme.Valid(key) {
		return nil, errDecode
	}
	return key, nil
}

// readKeyNonblock reads one codepoint only if input is immediately
// available. It is used to continue a multi-byte keymap walk and never
// blocks for the leading byte.
func (ed *Editor) readKeyNonblock() []byte {
	ready, err := sys.WaitForRead(0, ed.in)
	if err != nil || !ready[0] {
		return nil
	}
	key, err := ed.readKey()
	if err != nil {
		return nil
	}
	return key
}

func (ed *Editor) readByte() (byte, error) {
	var b [1]byte
	for {
		n, err := ed.in.Read(b[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// termWidth returns the current column width of the output terminal,
// re-queried on every redisplay, or 80 if it cannot be determined.
func (ed *Editor) termWidth() int {
	if ed.widthFn != nil {
		return ed.widthFn()
	}
	_, col := sys.WinSize(ed.out)
	if col <= 0 {
		return defaultWidth
	}
	return col
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
