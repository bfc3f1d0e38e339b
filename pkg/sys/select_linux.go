//go:build linux

package sys

import (
	"time"

	"golang.org/x/sys/unix"
)

func doSelect(nfd int, r *fdSet, timeout time.Duration) error {
	var ptimeval *unix.Timeval
	if timeout >= 0 {
		timeval := unix.NsecToTimeval(int64(timeout))
		ptimeval = &timeval
	}
	_, err := unix.Select(nfd, r.s(), nil, nil, ptimeval)
	return err
}
