// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package token decodes and encodes the action tokens attached to clickable
message components.

# Wire Format

An action token is an ASCII string of colon-delimited segments. The first
segment is the routing key, the rest are positional arguments:

	poll:p1:Option A
	color:Crimson
	quizgame:v1:user1:s:chosen:correct:4:0:0:0

Maximum length is bounded by the platform's component-identifier limit and
is not enforced here.

# Routing Keys

Key is a closed set checked with Known:

	course, year, program, notification, activity, color,
	poll, pollstats, quiz, quizgame, help

"help" is a documented no-op: informational buttons carry it so a click
acknowledges without dispatching a handler.

# Usage

	tok, err := token.Parse(envelope.CustomID)
	if err != nil { ... }
	switch tok.Key {
	case token.KeyPoll:
		pollID, option := tok.Arg(0), tok.Arg(1)
	...
	}

Unknown keys are returned as-is so the dispatcher can log and drop them.
*/
package token
