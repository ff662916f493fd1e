// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/guildhall/models"
)

var ErrNotFound = errors.New("poll not found")

// CreateSchema creates the poll table. Safe to call multiple times - uses
// IF NOT EXISTS. Works on both sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls, stored as serialized state keyed by id
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// Store is the key-value persistence boundary for poll state. Get and Set
// expose the raw read/write contract; Update serializes read-modify-write
// sequences per poll id so concurrent votes cannot lose an update.
type Store struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(db *sql.DB) *Store {
	return &Store{db: db, locks: make(map[string]*sync.Mutex)}
}

// Get returns the poll for id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*models.Poll, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM poll WHERE id = $1`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pollstore: get %s: %w", id, err)
	}

	var poll models.Poll
	if err := json.Unmarshal([]byte(payload), &poll); err != nil {
		return nil, fmt.Errorf("pollstore: decode %s: %w", id, err)
	}
	return &poll, nil
}

// Set writes the full poll record, inserting or overwriting.
func (s *Store) Set(ctx context.Context, id string, poll *models.Poll) error {
	payload, err := json.Marshal(poll)
	if err != nil {
		return fmt.Errorf("pollstore: encode %s: %w", id, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO poll (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, id, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("pollstore: set %s: %w", id, err)
	}
	return nil
}

// Update applies fn to the current poll state and writes the result back.
// Mutations for the same poll id are serialized behind a per-key lock, so
// two concurrent votes both take effect instead of the second overwrite
// discarding the first. The mutated poll's invariants are checked before
// the write; a violation aborts the update.
func (s *Store) Update(ctx context.Context, id string, fn func(*models.Poll) error) (*models.Poll, error) {
	lock := s.keyLock(id)
	lock.Lock()
	defer lock.Unlock()

	poll, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(poll); err != nil {
		return nil, err
	}

	if err := poll.Check(); err != nil {
		return nil, fmt.Errorf("pollstore: refusing write: %w", err)
	}

	if err := s.Set(ctx, id, poll); err != nil {
		return nil, err
	}
	return poll, nil
}

func (s *Store) keyLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
