// Package cache keeps scored positions in a badger database so repeated
// dataset runs skip the work.
package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound reports a position missing from the cache.
var ErrNotFound = errors.New("cache: not found")

// Store is a persistent fen -> value map. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens or creates a cache at dir.
func Open(dir string) (*Store, error) {
	var opts = badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached value of a position, or ErrNotFound.
func (s *Store) Get(fen string) (float32, error) {
	var value float32
	var err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fen))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 4 {
				return fmt.Errorf("cache: bad value size %v", len(val))
			}
			value = math.Float32frombits(binary.LittleEndian.Uint32(val))
			return nil
		})
	})
	return value, err
}

// Put stores the value of a position, overwriting any previous one.
func (s *Store) Put(fen string, value float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(value))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(fen), buf[:])
	})
}
