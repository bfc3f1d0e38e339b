//go:build unix

package sys

import (
	"golang.org/x/sys/unix"
)

// Termios wraps the terminal attribute set of a file descriptor.
type Termios unix.Termios

// TermiosFromFd returns the current Termios of the given file descriptor.
func TermiosFromFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	return (*Termios)(term), nil
}

// ApplyToFd applies term to the given file descriptor, flushing pending
// input first.
func (term *Termios) ApplyToFd(fd int) error {
	return unix.IoctlSetTermios(fd, setAttrFlushIOCTL, (*unix.Termios)(term))
}

// Copy returns a copy of term.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// The integer type of termios flag fields differs across OSes.
func setFlag[T ~uint32 | ~uint64](flag *T, mask T, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &= ^mask
	}
}

// SetICanon sets the canonical (line-buffered) input flag.
func (term *Termios) SetICanon(v bool) { setFlag(&term.Lflag, unix.ICANON, v) }

// SetEcho sets the input echo flag.
func (term *Termios) SetEcho(v bool) { setFlag(&term.Lflag, unix.ECHO, v) }

// SetISig sets whether input bytes generate signals, so that when unset the
// interrupt character is delivered as an ordinary byte.
func (term *Termios) SetISig(v bool) { setFlag(&term.Lflag, unix.ISIG, v) }

// SetIExten sets the extended input processing flag.
func (term *Termios) SetIExten(v bool) { setFlag(&term.Lflag, unix.IEXTEN, v) }

// SetICrnl sets whether input CR bytes are translated to NL.
func (term *Termios) SetICrnl(v bool) { setFlag(&term.Iflag, unix.ICRNL, v) }

// SetIXon sets software flow control on input.
func (term *Termios) SetIXon(v bool) { setFlag(&term.Iflag, unix.IXON, v) }

// SetOPost sets output post-processing.
func (term *Termios) SetOPost(v bool) { setFlag(&term.Oflag, unix.OPOST, v) }

// SetONlcr sets whether output NL bytes are translated to CR NL.
func (term *Termios) SetONlcr(v bool) { setFlag(&term.Oflag, unix.ONLCR, v) }

// SetVMin sets the minimum number of bytes a non-canonical read returns.
func (term *Termios) SetVMin(v uint8) { term.Cc[unix.VMIN] = v }

// SetVTime sets the non-canonical read timeout in deciseconds.
func (term *Termios) SetVTime(v uint8) { term.Cc[unix.VTIME] = v }
