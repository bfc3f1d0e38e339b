// Package histutil is the history collaborator of the line editor: a list
// of previously read lines, walked through with a cursor. The editor only
// ever borrows entries from here; it never mutates them.
package histutil

import (
	"errors"

	"lined.dev/pkg/store"
)

// ErrEndOfHistory is returned by Cursor.Get after the cursor has moved past
// either end of the history.
var ErrEndOfHistory = errors.New("end of history")

// Store is a store of line history entries.
type Store interface {
	// AllCmds returns all entries, oldest first.
	AllCmds() ([]store.Cmd, error)
	// AddCmd adds a new entry and returns its sequence number. Adding an
	// entry equal to the newest one is a no-op returning the existing
	// sequence number.
	AddCmd(text string) (int, error)
	// Cursor returns a cursor over entries with the given prefix, initially
	// parked past the newest entry.
	Cursor(prefix string) Cursor
}

// Cursor is a movable pointer into the history. The position one past the
// newest entry is valid and represents the line being edited; Get returns
// ErrEndOfHistory there.
type Cursor interface {
	// Prev moves the cursor to the previous matching entry, if any.
	Prev()
	// Next moves the cursor to the next matching entry, or past the newest
	// entry.
	Next()
	// Get returns the entry under the cursor, or ErrEndOfHistory if the
	// cursor is past either end.
	Get() (store.Cmd, error)
}
