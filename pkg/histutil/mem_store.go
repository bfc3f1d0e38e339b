package histutil

import (
	"strings"

	"lined.dev/pkg/store"
)

// MemStore is an in-memory Store that retains at most a fixed number of
// entries. It also offers list-management operations that the database
// adapter does not have.
type MemStore struct {
	cmds    []store.Cmd
	stifle  int
	nextSeq int
}

// New returns a MemStore retaining at most stifle entries; 0 means
// unbounded. When the cap is hit, adding drops the oldest entry. Sequence
// numbers keep growing across drops.
func New(stifle int) *MemStore {
	if stifle < 0 {
		stifle = 0
	}
	return &MemStore{stifle: stifle}
}

func (s *MemStore) AllCmds() ([]store.Cmd, error) {
	cmds := make([]store.Cmd, len(s.cmds))
	copy(cmds, s.cmds)
	return cmds, nil
}

func (s *MemStore) AddCmd(text string) (int, error) {
	if n := len(s.cmds); n > 0 && s.cmds[n-1].Text == text {
		return s.cmds[n-1].Seq, nil
	}
	seq := s.nextSeq
	s.nextSeq++
	s.cmds = append(s.cmds, store.Cmd{Text: text, Seq: seq})
	s.trim()
	return seq, nil
}

func (s *MemStore) Cursor(prefix string) Cursor {
	return &memStoreCursor{s.cmds, prefix, len(s.cmds)}
}

// Len returns the number of retained entries.
func (s *MemStore) Len() int { return len(s.cmds) }

// Cmd returns the entry at the given position, oldest first.
func (s *MemStore) Cmd(i int) (store.Cmd, error) {
	if i < 0 || i >= len(s.cmds) {
		return store.Cmd{}, ErrEndOfHistory
	}
	return s.cmds[i], nil
}

// Remove removes the entry at the given position and returns its text.
func (s *MemStore) Remove(i int) (string, error) {
	if i < 0 || i >= len(s.cmds) {
		return "", ErrEndOfHistory
	}
	text := s.cmds[i].Text
	s.cmds = append(s.cmds[:i], s.cmds[i+1:]...)
	return text, nil
}

// Clear removes all entries.
func (s *MemStore) Clear() { s.cmds = nil }

// Stifle caps the number of retained entries at n, dropping the oldest
// entries if there are currently more; n <= 0 removes the cap.
func (s *MemStore) Stifle(n int) {
	if n < 0 {
		n = 0
	}
	s.stifle = n
	s.trim()
}

// Unstifle removes the cap and returns its previous value.
func (s *MemStore) Unstifle() int {
	n := s.stifle
	s.stifle = 0
	return n
}

// IsStifled reports whether the number of entries is capped.
func (s *MemStore) IsStifled() bool { return s.stifle > 0 }

func (s *MemStore) trim() {
	if s.stifle > 0 && len(s.cmds) > s.stifle {
		drop := len(s.cmds) - s.stifle
		s.cmds = append([]store.Cmd(nil), s.cmds[drop:]...)
	}
}

type memStoreCursor struct {
	cmds   []store.Cmd
	prefix string
	index  int
}

func (c *memStoreCursor) Prev() {
	if c.index < 0 {
		return
	}
	for c.index--; c.index >= 0; c.index-- {
		if strings.HasPrefix(c.cmds[c.index].Text, c.prefix) {
			return
		}
	}
}

func (c *memStoreCursor) Next() {
	if c.index >= len(c.cmds) {
		return
	}
	for c.index++; c.index < len(c.cmds); c.index++ {
		if strings.HasPrefix(c.cmds[c.index].Text, c.prefix) {
			return
		}
	}
}

func (c *memStoreCursor) Get() (store.Cmd, error) {
	if c.index < 0 || c.index >= len(c.cmds) {
		return store.Cmd{}, ErrEndOfHistory
	}
	return c.cmds[c.index], nil
}
