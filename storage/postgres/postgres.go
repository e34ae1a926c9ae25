// Package postgres implements storage.Repository backed by PostgreSQL.
//
// The sealed_records table uses a composite primary key (user_id,
// category) that mirrors the key space of the BBolt and in-memory
// backends. The token column stores the codec's base64 output verbatim.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mwhitfield/sealbox/storage"
)

// Store implements storage.Repository backed by PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

var _ storage.Repository = (*Store)(nil)

// NewRepository returns a Repository backed by the given pgx connection pool.
func NewRepository(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// NewRepositoryFromDSN creates a connection pool from a DSN string,
// ensures the schema exists, and returns a new Repository.
func NewRepositoryFromDSN(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return NewRepository(pool), nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Put(userID, category string, rec *storage.Record) error {
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO sealed_records (user_id, category, id, token, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, category)
		 DO UPDATE SET id = $3, token = $4, updated_at = $5`,
		userID, category, rec.ID, rec.Token, rec.UpdatedAt)
	return err
}

func (s *Store) Get(userID, category string) (*storage.Record, error) {
	var rec storage.Record
	err := s.pool.QueryRow(context.Background(),
		`SELECT id, token, updated_at FROM sealed_records
		 WHERE user_id = $1 AND category = $2`,
		userID, category).Scan(&rec.ID, &rec.Token, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.notFoundError(context.Background(), userID, category)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) Delete(userID, category string) error {
	tag, err := s.pool.Exec(context.Background(),
		`DELETE FROM sealed_records WHERE user_id = $1 AND category = $2`,
		userID, category)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.notFoundError(context.Background(), userID, category)
	}
	return nil
}

func (s *Store) Categories(userID string) ([]string, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT category FROM sealed_records WHERE user_id = $1`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// notFoundError distinguishes a missing user from a missing category
// under an existing user, preserving the BBolt backend's semantics.
func (s *Store) notFoundError(ctx context.Context, userID, category string) error {
	var exists bool
	_ = s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM sealed_records WHERE user_id = $1 LIMIT 1)`,
		userID).Scan(&exists)
	if !exists {
		return fmt.Errorf("%s: %w", userID, storage.ErrUserNotFound)
	}
	return fmt.Errorf("%s/%s: %w", userID, category, storage.ErrNotFound)
}
