// Package memory provides a thread-safe in-memory implementation of
// storage.Repository. Suitable for testing, demos, and single-process
// use cases.
package memory

import (
	"sync"

	"github.com/mwhitfield/sealbox/storage"
)

// Repository is a thread-safe in-memory implementation of storage.Repository.
type Repository struct {
	mu   sync.RWMutex
	data map[string]map[string]*storage.Record
}

var _ storage.Repository = (*Repository)(nil)

// NewRepository creates a new empty in-memory Repository.
func NewRepository() *Repository {
	return &Repository{data: make(map[string]map[string]*storage.Record)}
}

func (r *Repository) Put(userID, category string, rec *storage.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[userID]; !ok {
		r.data[userID] = make(map[string]*storage.Record)
	}
	r.data[userID][category] = rec.Clone()
	return nil
}

func (r *Repository) Get(userID, category string) (*storage.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userData, ok := r.data[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	rec, ok := userData[category]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r *Repository) Delete(userID, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	userData, ok := r.data[userID]
	if !ok {
		return storage.ErrUserNotFound
	}
	if _, ok := userData[category]; !ok {
		return storage.ErrNotFound
	}
	delete(userData, category)
	return nil
}

func (r *Repository) Categories(userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var categories []string
	for c := range r.data[userID] {
		categories = append(categories, c)
	}
	return categories, nil
}
