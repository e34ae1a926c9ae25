// Package sealstore combines the encryption codec with an injected
// storage repository: values go in plain, come back plain, and only
// opaque tokens ever reach storage.
//
// The store adds no record-level consistency beyond what the
// repository provides. Two concurrent writes to the same (user,
// category) both produce valid tokens; the last committed write wins.
package sealstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/mwhitfield/sealbox/codec"
	"github.com/mwhitfield/sealbox/internal/uuid"
	"github.com/mwhitfield/sealbox/storage"
)

// Well-known data-category labels used by the application.
const (
	CategoryProfile  = "profile"
	CategorySettings = "settings"
	CategoryAPIKeys  = "api_keys"
)

// ErrNotStructured is returned when a category expected to hold a
// structured document decrypts to plain text.
var ErrNotStructured = errors.New("sealstore: record is not a structured value")

// Store encrypts values on the way in and decrypts them on the way
// out. It is stateless and safe for concurrent use.
type Store struct {
	codec *codec.Codec
	repo  storage.Repository
}

// New returns a Store using the given codec and repository.
func New(c *codec.Codec, repo storage.Repository) *Store {
	return &Store{codec: c, repo: repo}
}

// PutValue seals v and stores it under (userID, category), returning
// the new record's ID. Encrypt failures are safe to retry; each
// attempt produces an independent token.
func (s *Store) PutValue(userID, category string, v codec.Value) (string, error) {
	token, err := s.codec.Encrypt(v)
	if err != nil {
		return "", fmt.Errorf("sealing %s/%s: %w", userID, category, err)
	}
	rec := &storage.Record{
		ID:        uuid.New(),
		Token:     token,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(userID, category, rec); err != nil {
		return "", fmt.Errorf("storing %s/%s: %w", userID, category, err)
	}
	return rec.ID, nil
}

// GetValue retrieves and opens the record stored under (userID,
// category). A decryption failure means the data is unavailable — the
// token was tampered with, corrupted, or written under a different
// master secret — and is not retryable.
func (s *Store) GetValue(userID, category string) (codec.Value, error) {
	rec, err := s.repo.Get(userID, category)
	if err != nil {
		return codec.Value{}, err
	}
	v, err := s.codec.Decrypt(rec.Token)
	if err != nil {
		return codec.Value{}, fmt.Errorf("opening %s/%s: %w", userID, category, err)
	}
	return v, nil
}

// Delete removes the record stored under (userID, category).
func (s *Store) Delete(userID, category string) error {
	return s.repo.Delete(userID, category)
}

// Categories lists the data-category labels stored for a user.
func (s *Store) Categories(userID string) ([]string, error) {
	return s.repo.Categories(userID)
}
