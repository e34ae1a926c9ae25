package sealstore

import (
	"fmt"

	"github.com/mwhitfield/sealbox/codec"
)

// profileBookkeepingFields are non-sensitive housekeeping fields that
// stay out of the sealed document.
var profileBookkeepingFields = []string{"id", "created_at", "last_login"}

// PutProfile seals a user profile document, stripping bookkeeping
// fields first so only sensitive data pays the encryption round-trip.
func (s *Store) PutProfile(userID string, profile map[string]any) (string, error) {
	safe := make(map[string]any, len(profile))
	for k, v := range profile {
		safe[k] = v
	}
	for _, f := range profileBookkeepingFields {
		delete(safe, f)
	}
	return s.PutValue(userID, CategoryProfile, codec.Structured(safe))
}

// GetProfile retrieves and opens a user's profile document.
func (s *Store) GetProfile(userID string) (map[string]any, error) {
	v, err := s.GetValue(userID, CategoryProfile)
	if err != nil {
		return nil, err
	}
	tree, ok := v.Tree().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", userID, CategoryProfile, ErrNotStructured)
	}
	return tree, nil
}
