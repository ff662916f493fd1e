// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quiz is the trivia game's state machine. It is pure: no server-side
session exists between clicks. The clicked token carries the complete
checkpoint, so replaying a click replays the exact state it was issued for.

# Token Formats

Two versioned, fixed-arity forms:

	quiz:v1:<owner>:<y|n|h>                                  invitation
	quizgame:v1:<owner>:<s|n>:<chosen>:<correct>:<level>:-:-:-   in-game

ParseStart and ParseGame reject wrong keys, wrong arity, unknown versions,
unknown phases, and non-numeric levels. Every phase checks ownership first;
clicks from anyone but the embedded owner are rejected without state change.

# Rules

Levels 0-4 draw from the easy tier, 5-9 medium, 10+ hard. A correct answer
advances one level; reaching level 15 wins. A wrong answer ends the game at
any level. Finished games schedule their scoped channel for deletion after
CleanupDelay; the timer is not cancellable, and a deletion that finds the
channel already gone is logged, not fatal.

The correct answer rides openly inside the token, so a user who constructs
tokens by hand can forge a win. That is the source trust model for this
casual game, kept as-is.
*/
package quiz
