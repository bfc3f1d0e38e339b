//go:build unix

package editor

import (
	"fmt"
	"os"

	"lined.dev/pkg/sys"
)

// setup puts the terminal into the mode suitable for line editing and
// returns a function that restores the previous mode.
//
// The editor does its own echoing and handles control characters itself,
// so canonical mode, echoing, signal generation and flow control all go;
// output processing stays on so "\n" still moves to the start of the next
// line.
func setup(in *os.File) (func() error, error) {
	fd := int(in.Fd())
	term, err := sys.TermiosFromFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	saved := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetISig(false)
	term.SetIExten(false)
	term.SetICrnl(false)
	term.SetIXon(false)
	term.SetOPost(true)
	term.SetONlcr(true)
	term.SetVMin(1)
	term.SetVTime(0)

	if err := term.ApplyToFd(fd); err != nil {
		return nil, fmt.Errorf("can't set terminal attribute: %w", err)
	}
	return func() error {
		if err := saved.ApplyToFd(fd); err != nil {
			return fmt.Errorf("can't restore terminal attribute: %w", err)
		}
		return nil
	}, nil
}
