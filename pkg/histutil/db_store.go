package histutil

import (
	"lined.dev/pkg/store"
)

// DB is the subset of the storage interface used by the database-backed
// Store.
type DB interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	CmdsWithSeq(from, upto int) ([]store.Cmd, error)
	NextCmd(from int, prefix string) (store.Cmd, error)
	PrevCmd(upto int, prefix string) (store.Cmd, error)
}

// NewDBStore returns a Store backed by a database, with the view of stored
// entries frozen at creation. Added entries still write through.
func NewDBStore(db DB) (Store, error) {
	upper, err := db.NextCmdSeq()
	if err != nil {
		return nil, err
	}
	return dbStore{db, upper}, nil
}

type dbStore struct {
	db    DB
	upper int
}

func (s dbStore) AllCmds() ([]store.Cmd, error) {
	return s.db.CmdsWithSeq(0, s.upper)
}

func (s dbStore) AddCmd(text string) (int, error) {
	return s.db.AddCmd(text)
}

func (s dbStore) Cursor(prefix string) Cursor {
	return &dbStoreCursor{
		s.db, prefix, s.upper, store.Cmd{Seq: s.upper}, ErrEndOfHistory}
}

type dbStoreCursor struct {
	db     DB
	prefix string
	upper  int
	cmd    store.Cmd
	err    error
}

func (c *dbStoreCursor) Prev() {
	if c.cmd.Seq < 0 {
		return
	}
	cmd, err := c.db.PrevCmd(c.cmd.Seq, c.prefix)
	c.set(cmd, err, -1)
}

func (c *dbStoreCursor) Next() {
	if c.cmd.Seq >= c.upper {
		return
	}
	cmd, err := c.db.NextCmd(c.cmd.Seq+1, c.prefix)
	if err == nil && cmd.Seq >= c.upper {
		err = store.ErrNoMatchingCmd
	}
	c.set(cmd, err, c.upper)
}

func (c *dbStoreCursor) set(cmd store.Cmd, err error, endSeq int) {
	switch {
	case err == nil:
		c.cmd = cmd
		c.err = nil
	case err == store.ErrNoMatchingCmd:
		c.cmd = store.Cmd{Seq: endSeq}
		c.err = ErrEndOfHistory
	default:
		// Keep the old entry; report the error.
		c.err = err
	}
}

func (c *dbStoreCursor) Get() (store.Cmd, error) {
	return c.cmd, c.err
}
