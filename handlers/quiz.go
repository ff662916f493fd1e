// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/cliparse"
	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/platform"
	"github.com/danielhkuo/guildhall/quiz"
)

// QuizHandler serves invitation and in-game quiz clicks. All game state
// arrives inside the clicked token; the handler holds nothing between
// clicks.
type QuizHandler struct {
	client  platform.Client
	catalog *catalog.Catalog
	cfg     cliparse.Config

	// after is time.AfterFunc, swappable in tests.
	after func(d time.Duration, fn func()) *time.Timer
}

func NewQuizHandler(client platform.Client, cat *catalog.Catalog, cfg cliparse.Config) *QuizHandler {
	return &QuizHandler{
		client:  client,
		catalog: cat,
		cfg:     cfg,
		after:   time.AfterFunc,
	}
}

// Start handles an invitation click.
func (h *QuizHandler) Start(ctx context.Context, env models.Envelope, s quiz.Start) error {
	if !s.OwnedBy(env.UserID) {
		return h.notYourQuiz(ctx, env)
	}

	switch s.Phase {
	case quiz.PhaseDecline:
		return h.client.DeleteMessage(ctx, env.ChannelID, env.MessageID)

	case quiz.PhaseHelp:
		return h.client.Reply(ctx, env, platform.Reply{
			Panel:     helpPanel(),
			Ephemeral: true,
		})

	case quiz.PhaseAccept:
		return h.accept(ctx, env)
	}
	return nil
}

func (h *QuizHandler) accept(ctx context.Context, env models.Envelope) error {
	name := quizChannelName(env.UserID)

	channels, err := h.client.GuildChannels(ctx, env.GuildID)
	if err != nil {
		return err
	}
	for _, ch := range channels {
		if ch.Name == name {
			return h.client.Reply(ctx, env, platform.Reply{
				Content:   "You already have a quiz open.",
				Ephemeral: true,
			})
		}
	}

	ch, err := h.client.CreateChannel(ctx, env.GuildID, platform.CreateChannelRequest{
		Name:     name,
		ParentID: h.cfg.QuizCategoryID,
		ViewerID: env.UserID,
	})
	if err != nil {
		return err
	}

	if err := h.postQuestion(ctx, ch.ID, env.UserID, 0); err != nil {
		return err
	}

	if err := h.client.DeleteMessage(ctx, env.ChannelID, env.MessageID); err != nil {
		slog.Warn("quiz prompt cleanup failed", "error", err)
	}

	slog.Info("quiz started", "user", env.UserID, "channel", ch.ID)
	return h.client.Reply(ctx, env, platform.Reply{
		Content:   "Your quiz is ready in " + name + ". Good luck!",
		Ephemeral: true,
	})
}

// Progress handles an in-game click.
func (h *QuizHandler) Progress(ctx context.Context, env models.Envelope, g quiz.Game) error {
	if !g.OwnedBy(env.UserID) {
		return h.notYourQuiz(ctx, env)
	}

	if g.Phase == quiz.PhaseDecline {
		slog.Info("quiz quit", "user", env.UserID, "channel", env.ChannelID)
		return h.client.DeleteChannel(ctx, env.ChannelID)
	}

	switch g.Evaluate() {
	case quiz.Advance:
		next := g.Level + 1
		q, err := quiz.PickQuestion(h.catalog.Snapshot().Quiz, next)
		if err != nil {
			return err
		}
		return h.client.EditMessage(ctx, env.ChannelID, env.MessageID, questionMessage(env.UserID, q, next))

	case quiz.Won:
		slog.Info("quiz won", "user", env.UserID)
		err := h.client.EditMessage(ctx, env.ChannelID, env.MessageID, platform.Message{
			Panel: &models.Panel{
				Title:       "You won!",
				Description: "All " + strconv.Itoa(quiz.WinLevel) + " levels cleared. This channel closes in a minute.",
			},
		})
		h.scheduleCleanup(env.ChannelID)
		return err

	default: // Lost
		slog.Info("quiz lost", "user", env.UserID, "level", g.Level)
		err := h.client.EditMessage(ctx, env.ChannelID, env.MessageID, platform.Message{
			Panel: &models.Panel{
				Title:       "Game over",
				Description: "The answer was " + g.Correct + ". This channel closes in a minute.",
			},
		})
		h.scheduleCleanup(env.ChannelID)
		return err
	}
}

// postQuestion draws a question for level and posts it to the channel.
func (h *QuizHandler) postQuestion(ctx context.Context, channelID, ownerID string, level int) error {
	q, err := quiz.PickQuestion(h.catalog.Snapshot().Quiz, level)
	if err != nil {
		return err
	}
	_, err = h.client.Send(ctx, channelID, questionMessage(ownerID, q, level))
	return err
}

// scheduleCleanup deletes the scoped channel after the fixed delay. The
// timer is not cancellable; if the channel is already gone by then, the
// failure is only logged.
func (h *QuizHandler) scheduleCleanup(channelID string) {
	h.after(quiz.CleanupDelay, func() {
		err := h.client.DeleteChannel(context.Background(), channelID)
		if errors.Is(err, platform.ErrNotFound) {
			slog.Debug("quiz channel already deleted", "channel", channelID)
			return
		}
		if err != nil {
			slog.Warn("quiz channel cleanup failed", "channel", channelID, "error", err)
		}
	})
}

func (h *QuizHandler) notYourQuiz(ctx context.Context, env models.Envelope) error {
	return h.client.Reply(ctx, env, platform.Reply{
		Content:   "This is not your quiz.",
		Ephemeral: true,
	})
}

func questionMessage(ownerID string, q catalog.QuizQuestion, level int) platform.Message {
	panel := models.Panel{
		Title:       "Question " + strconv.Itoa(level+1),
		Description: q.Question,
		Footer:      "Level " + strconv.Itoa(level+1) + " of " + strconv.Itoa(quiz.WinLevel) + " (" + quiz.TierFor(level) + ")",
	}

	answerTokens := quiz.AnswerTokens(ownerID, q, level)
	buttons := make([]models.Button, 0, len(answerTokens)+1)
	for i, tok := range answerTokens {
		buttons = append(buttons, models.Button{
			Token: tok.Encode(),
			Label: q.Answers[i],
		})
	}
	buttons = append(buttons, models.Button{
		Token: quiz.QuitToken(ownerID).Encode(),
		Label: "Quit",
		Style: "danger",
	})
	return platform.Message{Panel: &panel, Buttons: buttons}
}

func helpPanel() *models.Panel {
	return &models.Panel{
		Title: "How the quiz works",
		Description: "Answer " + strconv.Itoa(quiz.WinLevel) + " questions in a row to win. " +
			"Questions get harder as you climb. One wrong answer ends the game.",
	}
}

func quizChannelName(userID string) string {
	return "quiz-" + userID
}
