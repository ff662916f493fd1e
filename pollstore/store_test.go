// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pollstore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danielhkuo/guildhall/models"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "polls.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := CreateSchema(db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return New(db)
}

func testPoll(id string) *models.Poll {
	return &models.Poll{
		ID:      id,
		Title:   "Favourite option?",
		Options: []string{"A", "B"},
		Counts:  []int{0, 0},
		OwnerID: "owner",
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "p1", testPoll("p1")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Favourite option?" || len(got.Options) != 2 {
		t.Errorf("round trip mangled poll: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	poll := testPoll("p1")
	if err := store.Set(ctx, "p1", poll); err != nil {
		t.Fatalf("Set: %v", err)
	}

	poll.Title = "Updated"
	if err := store.Set(ctx, "p1", poll); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	got, err := store.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("title = %q, want Updated", got.Title)
	}
}

func TestUpdateMissingPoll(t *testing.T) {
	store := setupStore(t)

	_, err := store.Update(context.Background(), "nope", func(p *models.Poll) error {
		t.Error("fn must not run for a missing poll")
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRejectsInvariantViolation(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "p1", testPoll("p1")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	_, err := store.Update(ctx, "p1", func(p *models.Poll) error {
		p.Counts[0] = 5 // counts no longer match votes
		return nil
	})
	if err == nil {
		t.Fatal("expected invariant violation error")
	}

	// The broken state must not have been written.
	got, err := store.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Counts[0] != 0 {
		t.Errorf("broken write leaked: counts = %v", got.Counts)
	}
}

func TestUpdatePropagatesFnError(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "p1", testPoll("p1")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sentinel := errors.New("rejected")
	_, err := store.Update(ctx, "p1", func(p *models.Poll) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Errorf("expected fn error, got %v", err)
	}
}

// TestConcurrentUpdatesDoNotLoseVotes covers the read-modify-write hazard:
// with plain Get+Set, two concurrent voters reading the same base state
// would leave votes == 1. Update serializes per poll id, so all mutations
// must survive.
func TestConcurrentUpdatesDoNotLoseVotes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "p2", testPoll("p2")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	numVoters := 8
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			_, err := store.Update(ctx, "p2", func(p *models.Poll) error {
				p.Counts[n%2]++
				p.Votes++
				p.Participants = append(p.Participants, models.Participant{
					UserID: "u" + string(rune('a'+n)),
					Option: n % 2,
				})
				return nil
			})
			if err != nil {
				t.Errorf("Update: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "p2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Votes != numVoters {
		t.Errorf("votes = %d, want %d (lost update)", got.Votes, numVoters)
	}
	if err := got.Check(); err != nil {
		t.Errorf("invariant violated after concurrent updates: %v", err)
	}
}
