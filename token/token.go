// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import (
	"errors"
	"strings"
)

var ErrEmpty = errors.New("empty action token")

// Key is the routing key carried in an action token's first segment.
type Key string

const (
	KeyCourse       Key = "course"
	KeyYear         Key = "year"
	KeyProgram      Key = "program"
	KeyNotification Key = "notification"
	KeyActivity     Key = "activity"
	KeyColor        Key = "color"
	KeyPoll         Key = "poll"
	KeyPollStats    Key = "pollstats"
	KeyQuiz         Key = "quiz"
	KeyQuizGame     Key = "quizgame"

	// KeyHelp is attached to informational buttons that need no handler.
	// The dispatcher treats it as a documented no-op.
	KeyHelp Key = "help"
)

var known = map[Key]bool{
	KeyCourse:       true,
	KeyYear:         true,
	KeyProgram:      true,
	KeyNotification: true,
	KeyActivity:     true,
	KeyColor:        true,
	KeyPoll:         true,
	KeyPollStats:    true,
	KeyQuiz:         true,
	KeyQuizGame:     true,
	KeyHelp:         true,
}

// Known reports whether the key belongs to the closed handler set.
func (k Key) Known() bool {
	return known[k]
}

// Token is a decoded action token: a routing key plus positional arguments.
type Token struct {
	Key  Key
	Args []string
}

// New builds a token for the given key and arguments.
func New(key Key, args ...string) Token {
	return Token{Key: key, Args: args}
}

// Parse splits a raw component identifier on ':' into a routing key and
// arguments. An unknown key is returned as-is; callers decide whether to
// drop it. Only a fully empty identifier is an error.
func Parse(raw string) (Token, error) {
	if raw == "" {
		return Token{}, ErrEmpty
	}

	parts := strings.Split(raw, ":")
	return Token{Key: Key(parts[0]), Args: parts[1:]}, nil
}

// Encode serializes the token back to its wire form.
func (t Token) Encode() string {
	if len(t.Args) == 0 {
		return string(t.Key)
	}
	return string(t.Key) + ":" + strings.Join(t.Args, ":")
}

// Arg returns the i-th argument, or "" when absent.
func (t Token) Arg(i int) string {
	if i < 0 || i >= len(t.Args) {
		return ""
	}
	return t.Args[i]
}
