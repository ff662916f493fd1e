// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"errors"
	"testing"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/token"
)

func TestStartTokenRoundTrip(t *testing.T) {
	accept, decline, help := StartTokens("u1")

	for _, tok := range []token.Token{accept, decline, help} {
		parsed, err := token.Parse(tok.Encode())
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		start, err := ParseStart(parsed)
		if err != nil {
			t.Fatalf("ParseStart(%q): %v", tok.Encode(), err)
		}
		if start.OwnerID != "u1" {
			t.Errorf("owner = %q", start.OwnerID)
		}
	}

	if accept.Encode() != "quiz:v1:u1:y" {
		t.Errorf("accept wire form = %q", accept.Encode())
	}
}

func TestParseStartRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"wrong key", "quizgame:v1:u1:y", ErrMalformed},
		{"short", "quiz:v1:u1", ErrMalformed},
		{"long", "quiz:v1:u1:y:extra", ErrMalformed},
		{"bad version", "quiz:v2:u1:y", ErrVersion},
		{"bad phase", "quiz:v1:u1:s", ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := token.Parse(tc.raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := ParseStart(parsed); !errors.Is(err, tc.want) {
				t.Errorf("ParseStart(%q) = %v, want %v", tc.raw, err, tc.want)
			}
		})
	}
}

func TestGameTokenRoundTrip(t *testing.T) {
	g := Game{OwnerID: "u1", Phase: PhaseAnswer, Chosen: "A", Correct: "B", Level: 7}

	raw := g.Token().Encode()
	if raw != "quizgame:v1:u1:s:A:B:7:-:-:-" {
		t.Errorf("wire form = %q", raw)
	}

	parsed, err := token.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := ParseGame(parsed)
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if got != g {
		t.Errorf("round trip = %+v, want %+v", got, g)
	}
}

func TestParseGameRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"wrong key", "quiz:v1:u1:s:A:B:0:-:-:-", ErrMalformed},
		{"wrong arity", "quizgame:v1:u1:s:A:B:0", ErrMalformed},
		{"bad version", "quizgame:v9:u1:s:A:B:0:-:-:-", ErrVersion},
		{"bad phase", "quizgame:v1:u1:y:A:B:0:-:-:-", ErrMalformed},
		{"bad level", "quizgame:v1:u1:s:A:B:seven:-:-:-", ErrMalformed},
		{"negative level", "quizgame:v1:u1:s:A:B:-1:-:-:-", ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := token.Parse(tc.raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := ParseGame(parsed); !errors.Is(err, tc.want) {
				t.Errorf("ParseGame(%q) = %v, want %v", tc.raw, err, tc.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		chosen string
		level  int
		want   Verdict
	}{
		{"correct advances", "A", 0, Advance},
		{"correct at 13 advances", "A", 13, Advance},
		{"correct at 14 wins", "A", 14, Won},
		{"wrong at 0 loses", "B", 0, Lost},
		{"wrong at 14 loses", "B", 14, Lost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Game{Chosen: tc.chosen, Correct: "A", Level: tc.level}
			if got := g.Evaluate(); got != tc.want {
				t.Errorf("Evaluate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOwnership(t *testing.T) {
	g := Game{OwnerID: "u1"}
	if !g.OwnedBy("u1") || g.OwnedBy("u2") {
		t.Error("game ownership check wrong")
	}
	s := Start{OwnerID: "u1"}
	if !s.OwnedBy("u1") || s.OwnedBy("u2") {
		t.Error("start ownership check wrong")
	}
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, "easy"}, {4, "easy"},
		{5, "medium"}, {9, "medium"},
		{10, "hard"}, {14, "hard"},
	}
	for _, tc := range cases {
		if got := TierFor(tc.level); got != tc.want {
			t.Errorf("TierFor(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestPickQuestionDrawsFromTier(t *testing.T) {
	bank := catalog.QuizBank{
		Easy:   []catalog.QuizQuestion{{Question: "e", Answers: []string{"A", "B", "C", "D"}, Correct: "A"}},
		Medium: []catalog.QuizQuestion{{Question: "m", Answers: []string{"A", "B", "C", "D"}, Correct: "B"}},
		Hard:   []catalog.QuizQuestion{{Question: "h", Answers: []string{"A", "B", "C", "D"}, Correct: "C"}},
	}

	for level, want := range map[int]string{0: "e", 5: "m", 12: "h"} {
		q, err := PickQuestion(bank, level)
		if err != nil {
			t.Fatalf("PickQuestion(level %d): %v", level, err)
		}
		if q.Question != want {
			t.Errorf("level %d drew %q, want %q", level, q.Question, want)
		}
	}
}

func TestPickQuestionEmptyTier(t *testing.T) {
	if _, err := PickQuestion(catalog.QuizBank{}, 0); err == nil {
		t.Error("expected error for empty tier")
	}
}

func TestAnswerTokensCarryFullState(t *testing.T) {
	q := catalog.QuizQuestion{
		Question: "Pick one",
		Answers:  []string{"W", "X", "Y", "Z"},
		Correct:  "Y",
	}

	toks := AnswerTokens("u1", q, 3)
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
	for i, tok := range toks {
		g, err := ParseGame(tok)
		if err != nil {
			t.Fatalf("ParseGame: %v", err)
		}
		if g.Chosen != q.Answers[i] || g.Correct != "Y" || g.Level != 3 || g.OwnerID != "u1" {
			t.Errorf("token %d decoded to %+v", i, g)
		}
	}
}

func TestQuitToken(t *testing.T) {
	g, err := ParseGame(QuitToken("u1"))
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	if g.Phase != PhaseDecline || g.OwnerID != "u1" {
		t.Errorf("quit token decoded to %+v", g)
	}
}
