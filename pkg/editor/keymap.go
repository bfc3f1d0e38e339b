package editor

// KeyHandler is an editing action bound to a key sequence. It receives the
// full byte sequence that selected it, including any bytes consumed past
// it while walking a longer candidate binding. Returning false rings the
// bell.
type KeyHandler func(key []byte) bool

// keymapNode is one level of the key prefix tree. At a given node a byte
// may carry a handler, a child node for longer sequences, or both; when
// both are present the handler only runs if the walk past the child finds
// nothing better.
type keymapNode struct {
	handlers map[byte]KeyHandler
	children map[byte]*keymapNode
}

func newKeymapNode() *keymapNode {
	return &keymapNode{
		handlers: make(map[byte]KeyHandler),
		children: make(map[byte]*keymapNode),
	}
}

// Bind binds fn to the given byte sequence, replacing any previous binding
// for it. Binding nil absorbs the sequence: its bytes are consumed and the
// bell rings.
func (ed *Editor) Bind(seq string, fn KeyHandler) {
	if seq == "" {
		return
	}
	node := ed.root
	for i := 0; i < len(seq)-1; i++ {
		c := seq[i]
		child := node.children[c]
		if child == nil {
			child = newKeymapNode()
			node.children[c] = child
		}
		node = child
	}
	node.handlers[seq[len(seq)-1]] = fn
}

// SpecialKey identifies a non-printing key with a conventional escape
// sequence.
type SpecialKey int

const (
	KeyUp SpecialKey = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
)

var specialKeySeqs = map[SpecialKey]string{
	KeyUp:     "\x1b[A",
	KeyDown:   "\x1b[B",
	KeyRight:  "\x1b[C",
	KeyLeft:   "\x1b[D",
	KeyHome:   "\x1bOH",
	KeyEnd:    "\x1bOF",
	KeyInsert: "\x1b[2~",
	KeyDelete: "\x1b[3~",
}

// BindSpecial binds fn to the escape sequence of the given special key.
func (ed *Editor) BindSpecial(key SpecialKey, fn KeyHandler) {
	if seq, ok := specialKeySeqs[key]; ok {
		ed.Bind(seq, fn)
	}
}

// handleKey dispatches one key through the prefix tree. The walk starts
// from the already-read codepoint and pulls in further codepoints only
// while they are immediately available and a longer binding is still
// possible, remembering the deepest handler passed on the way. Unbound or
// failed keys ring the bell; any extra bytes consumed by the walk are
// dropped with it, never re-dispatched.
func (ed *Editor) handleKey(key []byte) {
	var handler KeyHandler
	buf := append([]byte(nil), key...)
	node := ed.root
	for i := 0; ; i++ {
		if i >= len(buf) {
			more := ed.readKeyNonblock()
			if more == nil {
				break
			}
			buf = append(buf, more...)
		}
		c := buf[i]
		if h := node.handlers[c]; h != nil {
			handler = h
		}
		node = node.children[c]
		if node == nil {
			break
		}
	}
	if handler == nil || !handler(buf) {
		ed.Ding()
	}
}
