package editor

// Growth headroom when the owned buffer is reallocated without a length
// cap. Reallocating to exactly the needed size would realloc on every
// keystroke.
const growthHeadroom = 10

func (ed *Editor) end() int {
	if ed.hasExternal {
		return len(ed.external)
	}
	return len(ed.buf)
}

// promote copies a borrowed line into owned storage before the first
// mutation, so that SetLine callers never see their string's backing
// storage change under them.
func (ed *Editor) promote() {
	if !ed.hasExternal {
		return
	}
	if cap(ed.buf) < len(ed.external) {
		ed.buf = make([]byte, 0, len(ed.external))
	}
	ed.buf = append(ed.buf[:0], ed.external...)
	ed.hasExternal = false
}

// extend makes sure the owned buffer can hold n bytes. It reports false
// only when a length cap is in effect and n exceeds it.
func (ed *Editor) extend(n int) bool {
	if n <= cap(ed.buf) {
		return true
	}
	if ed.maxLineLen > 0 {
		if n > ed.maxLineLen {
			return false
		}
		nb := make([]byte, len(ed.buf), ed.maxLineLen)
		copy(nb, ed.buf)
		ed.buf = nb
		return true
	}
	newCap := cap(ed.buf) + growthHeadroom
	if newCap < n {
		newCap = n
	}
	nb := make([]byte, len(ed.buf), newCap)
	copy(nb, ed.buf)
	ed.buf = nb
	return true
}

// InsertText inserts text at the point and advances the point past it. It
// reports whether the insertion was applied; it fails only when a length
// cap is in effect and the result would not fit.
func (ed *Editor) InsertText(text string) bool {
	if text == "" {
		return true
	}
	ed.promote()
	oldEnd := len(ed.buf)
	need := oldEnd + len(text)
	if !ed.extend(need) {
		return false
	}
	ed.buf = ed.buf[:need]
	copy(ed.buf[ed.point+len(text):], ed.buf[ed.point:oldEnd])
	copy(ed.buf[ed.point:], text)
	ed.point += len(text)
	return true
}

// DeleteText removes the bytes in [start, end). The point moves with the
// text after the deletion, or to start if it was inside the deleted range.
func (ed *Editor) DeleteText(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > ed.end() {
		end = ed.end()
	}
	if start >= end {
		return
	}
	ed.promote()
	delta := end - start
	copy(ed.buf[start:], ed.buf[end:])
	ed.buf = ed.buf[:len(ed.buf)-delta]
	if ed.point > end {
		ed.point -= delta
	} else if ed.point > start {
		ed.point = start
	}
}

// SetLine installs text as the edited line without copying it, and puts
// the point at its end. The string is only copied if a later edit mutates
// it. The caller is responsible for redisplaying.
func (ed *Editor) SetLine(text string) {
	ed.external = text
	ed.hasExternal = true
	ed.point = len(text)
}

// ReplaceLine replaces the edited line with a copy of text, puts the point
// at its end and redisplays. It reports whether the replacement was
// applied; it fails only when a length cap is in effect and text does not
// fit.
func (ed *Editor) ReplaceLine(text string) bool {
	if !ed.extend(len(text)) {
		return false
	}
	ed.hasExternal = false
	ed.buf = append(ed.buf[:0], text...)
	ed.point = len(text)
	ed.redisplay()
	return true
}
