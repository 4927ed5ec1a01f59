// Package store implements the durable record store backing every
// collection of the catalog. Each collection is one JSON document on disk
// holding an array of flat records; every mutation is a whole-collection
// read-modify-write cycle. Collections are small and writes are rare, so no
// partial updates and no indexing. A per-collection mutex serializes
// read-modify-write cycles within the process; concurrent processes still
// race last-writer-wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"artcatalog/internal/common"
	"artcatalog/internal/filex"
)

// Record is implemented by every entity persisted through the store.
type Record interface {
	RecordID() int64
}

// Store manages the collection documents under a single data directory.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &Store{dir: abs, locks: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the data directory the store was rooted at.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) collectionLock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// Load reads the whole collection. A collection whose backing document does
// not exist yet is an empty collection, not an error.
func Load[T any](s *Store, collection string) ([]T, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save writes the whole collection back. The document is written to a
// temporary file first and renamed into place so readers never observe a
// partial write. Failures surface as common.ErrStorageFailure.
func Save[T any](s *Store, collection string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", common.ErrStorageFailure, collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	return nil
}

// Update runs one read-modify-write cycle under the collection's mutex.
// apply receives the loaded records and returns the records to persist.
// If apply fails, nothing is written and its error is returned as-is.
func Update[T any](s *Store, collection string, apply func([]T) ([]T, error)) ([]T, error) {
	l := s.collectionLock(collection)
	l.Lock()
	defer l.Unlock()

	records, err := Load[T](s, collection)
	if err != nil {
		return nil, err
	}
	updated, err := apply(records)
	if err != nil {
		return nil, err
	}
	if err := Save(s, collection, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// NextID computes the next identifier for a collection: max existing id plus
// one, or 1 for an empty collection. Deleting a record leaves a gap; ids are
// never renumbered to close it.
func NextID[T Record](records []T) int64 {
	var max int64
	for _, r := range records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}
