// Package storage provides the storage abstraction for encrypted
// record tokens. The codec never touches files or locks directly;
// callers inject a Repository keyed by (user identifier, data-category
// label), mirroring how the application persists per-user documents.
package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record exists for the given
	// category under an existing user.
	ErrNotFound = errors.New("record not found")
	// ErrUserNotFound is returned when the user has no records at all.
	ErrUserNotFound = errors.New("user not found")
)

// Record is a stored encrypted document. Token is the codec's opaque
// output and is persisted verbatim; the repository never interprets it.
type Record struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// Repository defines the interface for encrypted record storage.
// Implementations must be safe for concurrent use; two concurrent Puts
// to the same (user, category) are both valid and the last committed
// write wins.
type Repository interface {
	Put(userID, category string, rec *Record) error
	Get(userID, category string) (*Record, error)
	Delete(userID, category string) error
	Categories(userID string) ([]string, error)
}
