//go:build unix

package sys

import "golang.org/x/sys/unix"

type fdSet unix.FdSet

func newFdSet() *fdSet {
	return &fdSet{}
}

func (fs *fdSet) s() *unix.FdSet {
	return (*unix.FdSet)(fs)
}

func (fs *fdSet) set(fds ...int) {
	for _, fd := range fds {
		fs.s().Set(fd)
	}
}

func (fs *fdSet) isSet(fd int) bool {
	return fs.s().IsSet(fd)
}
