// Package perftstore caches perft node counts in a BadgerDB database so
// that repeated runs over the same positions skip the search.
package perftstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const keyPrefix = "perft"

// Result is a stored node count.
type Result struct {
	FEN        string        `json:"fen"`
	Depth      int           `json:"depth"`
	Nodes      uint64        `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed"`
	ComputedAt time.Time     `json:"computed_at"`
}

// Store wraps BadgerDB for persistent perft results.
type Store struct {
	db *badger.DB
}

// Open opens or creates a store in dir. An empty dir keeps the data in
// memory only.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening perft cache %q", dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// key identifies a position by the FEN fields perft depends on. The clocks
// are dropped since they do not change the move tree.
func key(fen string, depth int) []byte {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return []byte(fmt.Sprintf("%s:%d:%s", keyPrefix, depth, strings.Join(fields, " ")))
}

// Get returns the stored result for fen at depth. found is false if there is
// none.
func (s *Store) Get(fen string, depth int) (result Result, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	return result, found, err
}

// Put stores a result, replacing any previous one for the same position and
// depth.
func (s *Store) Put(result Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(result.FEN, result.Depth), data)
	})
}

// Count returns the cached node count for fen at depth, calling compute and
// storing its answer on a miss. cached reports whether the store answered.
func (s *Store) Count(fen string, depth int, compute func() uint64) (nodes uint64, cached bool, err error) {
	result, found, err := s.Get(fen, depth)
	if err != nil {
		return 0, false, err
	}
	if found {
		return result.Nodes, true, nil
	}

	start := time.Now()
	nodes = compute()
	err = s.Put(Result{
		FEN:        fen,
		Depth:      depth,
		Nodes:      nodes,
		Elapsed:    time.Since(start),
		ComputedAt: time.Now(),
	})
	return nodes, false, err
}

// List returns every stored result in key order.
func (s *Store) List() ([]Result, error) {
	var results []Result
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix + ":")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var r Result
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return err
			}
			results = append(results, r)
		}
		return nil
	})
	return results, err
}
