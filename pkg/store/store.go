// Package store keeps line history in a persistent database, one entry per
// sequence number.
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"lined.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

// ErrNoMatchingCmd is returned by Cmd when no entry has the given sequence
// number.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Cmd is an entry in the line history.
type Cmd struct {
	Text string
	Seq  int
}

// Store is the interface to the line history database.
type Store interface {
	// NextCmdSeq returns the sequence number the next added entry will get.
	NextCmdSeq() (int, error)
	// AddCmd adds a new entry and returns its sequence number.
	AddCmd(text string) (int, error)
	// Cmd returns the entry with the given sequence number.
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns all entries with sequence numbers in [from, upto).
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	// NextCmd returns the first entry with a sequence number not less than
	// from whose text starts with prefix.
	NextCmd(from int, prefix string) (Cmd, error)
	// PrevCmd returns the last entry with a sequence number less than upto
	// whose text starts with prefix.
	PrevCmd(upto int, prefix string) (Cmd, error)
	// DelCmd deletes the entry with the given sequence number.
	DelCmd(seq int) error
	// Close closes the database.
	Close() error
}

const dbOpenTimeout = time.Second

// NewStore opens the database file at path, creating it if absent.
func NewStore(path string) (Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: dbOpenTimeout})
	if err != nil {
		return nil, err
	}
	logger.Println("opened database", path)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

type dbStore struct {
	db *bolt.DB
}

func (s *dbStore) Close() error {
	return s.db.Close()
}
