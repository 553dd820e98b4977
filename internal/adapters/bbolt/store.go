// Package bbolt implements ports.History using bbolt (embedded B+ tree).
// Each catalog path gets its own top-level bucket. Within it, "meta" holds
// JSON snapshot metadata and "data" holds the raw file bytes, both keyed by
// the big-endian snapshot ID so cursor order is creation order. Writes are
// transactional: a crash mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/corey/acro/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketMeta = []byte("meta")
	bucketData = []byte("data")
)

// Store implements ports.History backed by bbolt.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func idKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// Snapshot stores data as the newest version of catalogPath.
func (s *Store) Snapshot(catalogPath string, data []byte, reason string) (uint64, error) {
	var id uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists([]byte(catalogPath))
		if err != nil {
			return err
		}
		mb, err := root.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		db, err := root.CreateBucketIfNotExists(bucketData)
		if err != nil {
			return err
		}

		id, err = root.NextSequence()
		if err != nil {
			return err
		}
		meta, err := json.Marshal(ports.Snapshot{
			ID:        id,
			Reason:    reason,
			CreatedAt: s.now().Unix(),
			Size:      len(data),
		})
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if err := mb.Put(idKey(id), meta); err != nil {
			return err
		}
		if data == nil {
			data = []byte{}
		}
		return db.Put(idKey(id), data)
	})
	if err != nil {
		return 0, fmt.Errorf("snapshot %s: %w", catalogPath, err)
	}
	return id, nil
}

// List returns snapshot metadata for catalogPath, newest first.
// A path with no history yields an empty list.
func (s *Store) List(catalogPath string) ([]ports.Snapshot, error) {
	var out []ports.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		mb := metaBucket(tx, catalogPath)
		if mb == nil {
			return nil
		}
		c := mb.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var snap ports.Snapshot
			if err := json.Unmarshal(v, &snap); err != nil {
				return fmt.Errorf("unmarshal snapshot %d: %w", binary.BigEndian.Uint64(k), err)
			}
			out = append(out, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one snapshot with its data. Returns nil, nil if absent.
func (s *Store) Get(catalogPath string, id uint64) (*ports.Snapshot, error) {
	var snap *ports.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket([]byte(catalogPath))
		if root == nil {
			return nil
		}
		mb, db := root.Bucket(bucketMeta), root.Bucket(bucketData)
		if mb == nil || db == nil {
			return nil
		}
		meta := mb.Get(idKey(id))
		if meta == nil {
			return nil
		}
		snap = &ports.Snapshot{}
		if err := json.Unmarshal(meta, snap); err != nil {
			return fmt.Errorf("unmarshal snapshot %d: %w", id, err)
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		v := db.Get(idKey(id))
		snap.Data = make([]byte, len(v))
		copy(snap.Data, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Delete removes one snapshot. Idempotent: deleting a missing snapshot is
// not an error.
func (s *Store) Delete(catalogPath string, id uint64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return deleteSnapshot(tx, catalogPath, idKey(id))
	})
}

// Prune removes all but the newest keep snapshots of catalogPath.
// keep <= 0 removes every snapshot.
func (s *Store) Prune(catalogPath string, keep int) (int, error) {
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		mb := metaBucket(tx, catalogPath)
		if mb == nil {
			return nil
		}

		var stale [][]byte
		seen := 0
		c := mb.Cursor()
		for k, _ := c.Last(); k != nil; k, _ = c.Prev() {
			seen++
			if seen > keep {
				stale = append(stale, append([]byte(nil), k...))
			}
		}
		for _, k := range stale {
			if err := deleteSnapshot(tx, catalogPath, k); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("prune %s: %w", catalogPath, err)
	}
	return removed, nil
}

// Forget removes the whole history of catalogPath.
// Idempotent: forgetting an unknown path is not an error.
func (s *Store) Forget(catalogPath string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(catalogPath)); errors.Is(err, bolt.ErrBucketNotFound) {
			return nil // idempotent
		} else {
			return err
		}
	})
}

func metaBucket(tx *bolt.Tx, catalogPath string) *bolt.Bucket {
	root := tx.Bucket([]byte(catalogPath))
	if root == nil {
		return nil
	}
	return root.Bucket(bucketMeta)
}

func deleteSnapshot(tx *bolt.Tx, catalogPath string, key []byte) error {
	root := tx.Bucket([]byte(catalogPath))
	if root == nil {
		return nil
	}
	for _, name := range [][]byte{bucketMeta, bucketData} {
		if b := root.Bucket(name); b != nil {
			if err := b.Delete(key); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ ports.History = (*Store)(nil)
