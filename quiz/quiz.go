// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/token"
)

// Version is the token format revision. Tokens from a different revision
// are rejected rather than guessed at.
const Version = "v1"

// WinLevel is the level a player must reach to win: answering correctly at
// level 14 advances to 15 and ends the game.
const WinLevel = 15

// CleanupDelay is how long a finished game's scoped channel lingers before
// deletion. The timer is not cancellable.
const CleanupDelay = 60 * time.Second

// placeholder fills the reserved trailing slots of a game token.
const placeholder = "-"

var (
	ErrMalformed = errors.New("quiz: malformed token")
	ErrVersion   = errors.New("quiz: unsupported token version")
	ErrNotOwner  = errors.New("quiz: not your quiz")
)

// Phase is the discriminator argument carried in quiz tokens.
type Phase string

const (
	// PhaseAccept starts a game from the invitation prompt.
	PhaseAccept Phase = "y"
	// PhaseDecline dismisses the invitation, or quits a running game.
	PhaseDecline Phase = "n"
	// PhaseHelp shows the rules without changing state.
	PhaseHelp Phase = "h"
	// PhaseAnswer is an answer click inside a running game.
	PhaseAnswer Phase = "s"
)

// Start is a decoded invitation token: quiz:v1:<owner>:<y|n|h>.
type Start struct {
	OwnerID string
	Phase   Phase
}

// ParseStart decodes an invitation token. The key must be token.KeyQuiz.
func ParseStart(t token.Token) (Start, error) {
	if t.Key != token.KeyQuiz {
		return Start{}, fmt.Errorf("%w: key %q", ErrMalformed, t.Key)
	}
	if len(t.Args) != 3 {
		return Start{}, fmt.Errorf("%w: %d args, want 3", ErrMalformed, len(t.Args))
	}
	if t.Args[0] != Version {
		return Start{}, fmt.Errorf("%w: %q", ErrVersion, t.Args[0])
	}

	phase := Phase(t.Args[2])
	switch phase {
	case PhaseAccept, PhaseDecline, PhaseHelp:
	default:
		return Start{}, fmt.Errorf("%w: phase %q", ErrMalformed, phase)
	}

	return Start{OwnerID: t.Args[1], Phase: phase}, nil
}

// Token encodes the invitation back to wire form.
func (s Start) Token() token.Token {
	return token.New(token.KeyQuiz, Version, s.OwnerID, string(s.Phase))
}

// StartTokens builds the three invitation buttons' tokens for a user.
func StartTokens(ownerID string) (accept, decline, help token.Token) {
	accept = Start{OwnerID: ownerID, Phase: PhaseAccept}.Token()
	decline = Start{OwnerID: ownerID, Phase: PhaseDecline}.Token()
	help = Start{OwnerID: ownerID, Phase: PhaseHelp}.Token()
	return accept, decline, help
}

// Game is a decoded in-game token. The token is the complete checkpoint;
// no server-side session exists between clicks:
//
//	quizgame:v1:<owner>:<s|n>:<chosen>:<correct>:<level>:<r1>:<r2>:<r3>
//
// The three trailing slots are reserved and carry "-" in this revision.
type Game struct {
	OwnerID string
	Phase   Phase
	Chosen  string
	Correct string
	Level   int
}

// ParseGame decodes an in-game token. The key must be token.KeyQuizGame.
// Arity is fixed; a token with missing or extra segments is rejected.
func ParseGame(t token.Token) (Game, error) {
	if t.Key != token.KeyQuizGame {
		return Game{}, fmt.Errorf("%w: key %q", ErrMalformed, t.Key)
	}
	if len(t.Args) != 9 {
		return Game{}, fmt.Errorf("%w: %d args, want 9", ErrMalformed, len(t.Args))
	}
	if t.Args[0] != Version {
		return Game{}, fmt.Errorf("%w: %q", ErrVersion, t.Args[0])
	}

	phase := Phase(t.Args[2])
	switch phase {
	case PhaseAnswer, PhaseDecline:
	default:
		return Game{}, fmt.Errorf("%w: phase %q", ErrMalformed, phase)
	}

	level, err := strconv.Atoi(t.Args[5])
	if err != nil || level < 0 {
		return Game{}, fmt.Errorf("%w: level %q", ErrMalformed, t.Args[5])
	}

	return Game{
		OwnerID: t.Args[1],
		Phase:   phase,
		Chosen:  t.Args[3],
		Correct: t.Args[4],
		Level:   level,
	}, nil
}

// Token encodes the game state back to wire form.
func (g Game) Token() token.Token {
	return token.New(token.KeyQuizGame,
		Version, g.OwnerID, string(g.Phase),
		g.Chosen, g.Correct, strconv.Itoa(g.Level),
		placeholder, placeholder, placeholder,
	)
}

// OwnedBy reports whether the clicking user owns this game.
func (g Game) OwnedBy(userID string) bool { return g.OwnerID == userID }

// OwnedBy reports whether the clicking user owns this invitation.
func (s Start) OwnedBy(userID string) bool { return s.OwnerID == userID }

// Verdict is the outcome of evaluating an answer click.
type Verdict int

const (
	// Advance: correct answer, game continues at Level+1.
	Advance Verdict = iota
	// Won: correct answer reaching WinLevel.
	Won
	// Lost: wrong answer, game over.
	Lost
)

// Evaluate applies the answer check. Correctness is a plain text comparison
// against the correct answer carried openly in the token; any user able to
// construct a token can forge a win. That trust model is kept from the
// source behavior for this casual game.
func (g Game) Evaluate() Verdict {
	if g.Chosen != g.Correct {
		return Lost
	}
	if g.Level+1 >= WinLevel {
		return Won
	}
	return Advance
}

// AnswerTokens builds one game token per displayed answer for a question
// asked at the given level, in the question's answer order.
func AnswerTokens(ownerID string, q catalog.QuizQuestion, level int) []token.Token {
	out := make([]token.Token, len(q.Answers))
	for i, a := range q.Answers {
		out[i] = Game{
			OwnerID: ownerID,
			Phase:   PhaseAnswer,
			Chosen:  a,
			Correct: q.Correct,
			Level:   level,
		}.Token()
	}
	return out
}

// QuitToken builds the in-game quit button's token.
func QuitToken(ownerID string) token.Token {
	return Game{OwnerID: ownerID, Phase: PhaseDecline}.Token()
}

// TierFor maps a level to its question tier: levels 0-4 draw easy, 5-9
// medium, 10 and up hard.
func TierFor(level int) string {
	switch {
	case level < 5:
		return "easy"
	case level < 10:
		return "medium"
	}
	return "hard"
}

// PickQuestion draws a uniformly random question from the tier for level.
// An empty tier is a configuration error.
func PickQuestion(bank catalog.QuizBank, level int) (catalog.QuizQuestion, error) {
	var tier []catalog.QuizQuestion
	switch TierFor(level) {
	case "easy":
		tier = bank.Easy
	case "medium":
		tier = bank.Medium
	default:
		tier = bank.Hard
	}

	if len(tier) == 0 {
		return catalog.QuizQuestion{}, fmt.Errorf("quiz: no %s questions configured", TierFor(level))
	}
	return tier[rand.IntN(len(tier))], nil
}
