package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/five82/shiki/internal/catalog"
)

var (
	bucketFavorites = []byte("favorites")
	keyIDs          = []byte("ids")
)

// Store is the durable favorites set. Every Toggle rewrites the whole set
// under a single key before returning.
type Store struct {
	db     *bolt.DB
	logger *slog.Logger

	mu  sync.RWMutex
	ids catalog.IDSet
	mem []byte // persisted value in memory-only mode
}

// Open opens (or creates) the favorites database at path. An empty path
// selects memory-only mode: favorites live for the process lifetime only.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{logger: logger, ids: catalog.NewIDSet()}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create favorites dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open favorites db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFavorites)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create favorites bucket: %w", err)
	}
	s.db = db
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the persisted set into memory, replacing what is there. Missing
// or malformed data yields an empty set; the problem is logged, not returned.
func (s *Store) Load() {
	ids := catalog.NewIDSet()
	raw, err := s.readPersisted()
	switch {
	case err != nil:
		s.logger.Warn("favorites read failed", "error", err)
	case len(raw) > 0:
		var list []int
		if err := json.Unmarshal(raw, &list); err != nil {
			s.logger.Warn("favorites data malformed, starting empty", "error", err)
			break
		}
		for _, id := range list {
			ids[id] = struct{}{}
		}
	}

	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()
	s.logger.Debug("favorites loaded", "count", len(ids))
}

// Toggle flips membership of id and persists the full set. It returns the
// new membership. The in-memory flip stands even if the write fails.
func (s *Store) Toggle(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	now := !present

	if err := s.persistLocked(); err != nil {
		s.logger.Error("favorites write failed", "id", id, "error", err)
		return now, err
	}
	s.logger.Info("favorite toggled", "id", id, "favorite", now)
	return now, nil
}

// IsFavorite reports whether id is in the set.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids.Contains(id)
}

// IDs returns the favorite IDs in ascending order.
func (s *Store) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedIDs(s.ids)
}

// Set returns a copy of the membership set for derivation.
func (s *Store) Set() catalog.IDSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dup := make(catalog.IDSet, len(s.ids))
	for id := range s.ids {
		dup[id] = struct{}{}
	}
	return dup
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store) persistLocked() error {
	data, err := json.Marshal(sortedIDs(s.ids))
	if err != nil {
		return err
	}
	if s.db == nil {
		s.mem = data
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		if b == nil {
			return fmt.Errorf("bucket %s missing", bucketFavorites)
		}
		return b.Put(keyIDs, data)
	})
}

func (s *Store) readPersisted() ([]byte, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.mem == nil {
			return nil, nil
		}
		return append([]byte(nil), s.mem...), nil
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		if b == nil {
			return nil
		}
		if v := b.Get(keyIDs); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	return data, err
}

func sortedIDs(set catalog.IDSet) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
