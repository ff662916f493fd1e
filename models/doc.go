// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the envelope, domain, and boundary types for the
assistant core.

# Interaction Envelope

Every inbound platform event is decoded into an Envelope:

  - Kind: "command", "component", or "autocomplete"
  - UserID/UserTag: the acting user
  - GuildID/ChannelID/MessageID: where the interaction happened
  - CustomID: the raw action token for component clicks

Envelopes live for one dispatch and are never persisted.

# Domain Types

  - Poll: vote ledger (options, parallel counts, total, participants)
  - Participant: one user's recorded vote
  - Panel: structured data for the external rich-message renderer
  - Button: clickable component carrying an action token
  - Choice: autocomplete suggestion

# Poll Invariants

Poll.Check verifies after every mutation:

	sum(Counts) == Votes == len(Participants)

with unique participants and in-range option indices. A Check failure means
a vote mutation was applied outside pollstore.Update.

# Constants

Interaction kinds:

	KindCommand      = "command"
	KindComponent    = "component"
	KindAutocomplete = "autocomplete"
*/
package models
