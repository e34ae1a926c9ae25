// Package bbolt provides a BBolt-backed storage repository. Each user
// gets a bucket; the category label is the key within it.
package bbolt

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/mwhitfield/sealbox/storage"
)

// Store implements storage.Repository backed by a BBolt database.
type Store struct {
	db *bbolt.DB
}

var _ storage.Repository = (*Store)(nil)

// NewRepository returns a Repository backed by the given BBolt database.
func NewRepository(db *bbolt.DB) *Store {
	return &Store{db: db}
}

// NewRepositoryFromFile opens a BBolt database at the given path and
// returns a new Repository.
func NewRepositoryFromFile(path string, options *bbolt.Options) (*Store, error) {
	db, err := bbolt.Open(path, 0600, options)
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}
	return NewRepository(db), nil
}

// Close closes the underlying BBolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(userID, category string, rec *storage.Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return err
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(category), data)
	})
}

func (s *Store) Get(userID, category string) (*storage.Record, error) {
	var rec storage.Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(userID))
		if b == nil {
			return fmt.Errorf("%s: %w", userID, storage.ErrUserNotFound)
		}
		data := b.Get([]byte(category))
		if data == nil {
			return fmt.Errorf("%s/%s: %w", userID, category, storage.ErrNotFound)
		}
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) Delete(userID, category string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(userID))
		if b == nil {
			return fmt.Errorf("%s: %w", userID, storage.ErrUserNotFound)
		}
		if b.Get([]byte(category)) == nil {
			return fmt.Errorf("%s/%s: %w", userID, category, storage.ErrNotFound)
		}
		return b.Delete([]byte(category))
	})
}

func (s *Store) Categories(userID string) ([]string, error) {
	var categories []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(userID))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			categories = append(categories, string(k))
			return nil
		})
	})
	return categories, err
}
