package store

import (
	"fmt"
	"os"
)

// MustTempStore returns a Store backed by a temporary file, and a cleanup
// function to call when the Store is no longer needed.
func MustTempStore() (Store, func()) {
	f, err := os.CreateTemp("", "lined.test")
	if err != nil {
		panic(fmt.Sprintf("open temp file: %v", err))
	}
	st, err := NewStore(f.Name())
	if err != nil {
		panic(fmt.Sprintf("create Store instance: %v", err))
	}
	return st, func() {
		st.Close()
		f.Close()
		err = os.Remove(f.Name())
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp file:", err)
		}
	}
}
