//go:build unix

package sys

import (
	"os"
	"time"
)

// WaitForRead blocks until any of the given files is ready to be read, or
// until the timeout elapses. A negative timeout means no timeout. It
// returns a boolean array indicating which files are ready, and any error.
func WaitForRead(timeout time.Duration, files ...*os.File) (ready []bool, err error) {
	maxfd := 0
	fdset := newFdSet()
	for _, file := range files {
		fd := int(file.Fd())
		if maxfd < fd {
			maxfd = fd
		}
		fdset.set(fd)
	}
	err = doSelect(maxfd+1, fdset, timeout)
	ready = make([]bool, len(files))
	for i, file := range files {
		ready[i] = fdset.isSet(int(file.Fd()))
	}
	return ready, err
}
