// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pollstore persists poll state as serialized records keyed by poll
id.

# Schema

One table, created idempotently:

	CREATE TABLE IF NOT EXISTS poll (
	    id TEXT PRIMARY KEY,
	    payload TEXT NOT NULL,
	    updated_at TIMESTAMP NOT NULL
	)

The payload is the JSON-encoded models.Poll. Both database backends
(sqlite via modernc.org/sqlite, postgres via lib/pq) accept the same
statements; the driver is chosen by configuration at startup.

# Contract

	Get(ctx, id)        → *models.Poll or ErrNotFound
	Set(ctx, id, poll)  → full-record upsert
	Update(ctx, id, fn) → serialized read-modify-write

# Lost-Update Protection

A vote is a read-modify-write sequence. Two concurrent voters doing plain
Get+Set would both read the same base state and the second Set would
silently discard the first vote. Update takes a per-poll-id mutex around
the whole sequence, so concurrent mutations of one poll queue up while
different polls proceed in parallel. Update also runs Poll.Check before
writing and refuses to persist a record that violates the vote-count
invariants.
*/
package pollstore
