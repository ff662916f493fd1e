// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/guildhall/autocomplete"
	"github.com/danielhkuo/guildhall/cliparse"
	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/platform"
	"github.com/danielhkuo/guildhall/quiz"
	"github.com/danielhkuo/guildhall/roles"
	"github.com/danielhkuo/guildhall/token"
)

// Dispatcher is the interaction router: it classifies each inbound envelope
// and hands it to the matching handler. It is the single recovery boundary;
// nothing a handler does can crash the process.
type Dispatcher struct {
	client   platform.Client
	cfg      cliparse.Config
	commands *Registry
	rolesH   *RoleHandler
	pollsH   *PollHandler
	quizH    *QuizHandler
	index    *autocomplete.Index
}

func NewDispatcher(
	client platform.Client,
	cfg cliparse.Config,
	commands *Registry,
	rolesH *RoleHandler,
	pollsH *PollHandler,
	quizH *QuizHandler,
	index *autocomplete.Index,
) *Dispatcher {
	return &Dispatcher{
		client:   client,
		cfg:      cfg,
		commands: commands,
		rolesH:   rolesH,
		pollsH:   pollsH,
		quizH:    quizH,
		index:    index,
	}
}

// Route dispatches one interaction. Exactly one audit entry is emitted per
// call, after the handler completes; audit delivery failure is only logged.
// Handler errors and panics are logged and converted to a best-effort
// ephemeral failure reply.
func (d *Dispatcher) Route(ctx context.Context, env models.Envelope) {
	defer d.audit(ctx, env)
	defer func() {
		if r := recover(); r != nil {
			slog.Error("handler panicked", "interaction_id", env.ID, "kind", env.Kind, "panic", r)
			d.failureReply(ctx, env)
		}
	}()

	var err error
	switch env.Kind {
	case models.KindCommand:
		err = d.routeCommand(ctx, env)
	case models.KindComponent:
		err = d.routeComponent(ctx, env)
	case models.KindAutocomplete:
		err = d.routeAutocomplete(ctx, env)
	default:
		slog.Warn("dropping interaction of unknown kind", "kind", env.Kind, "interaction_id", env.ID)
		return
	}

	if err != nil {
		slog.Error("handler failed", "interaction_id", env.ID, "kind", env.Kind, "error", err)
		d.failureReply(ctx, env)
	}
}

func (d *Dispatcher) routeCommand(ctx context.Context, env models.Envelope) error {
	cmd, ok := d.commands.Lookup(env.Command)
	if !ok {
		slog.Warn("dropping unregistered command", "command", env.Command, "user", env.UserID)
		return nil
	}
	return cmd.Execute(ctx, env)
}

func (d *Dispatcher) routeComponent(ctx context.Context, env models.Envelope) error {
	tok, err := token.Parse(env.CustomID)
	if err != nil {
		slog.Warn("dropping component with empty token", "user", env.UserID)
		return nil
	}

	switch tok.Key {
	case token.KeyColor:
		return d.rolesH.Toggle(ctx, env, roles.GroupColor, tok.Arg(0))
	case token.KeyYear:
		return d.rolesH.Toggle(ctx, env, roles.GroupYear, tok.Arg(0))
	case token.KeyProgram:
		return d.rolesH.Toggle(ctx, env, roles.GroupProgram, tok.Arg(0))
	case token.KeyNotification:
		return d.rolesH.Toggle(ctx, env, roles.GroupNotification, tok.Arg(0))
	case token.KeyActivity:
		return d.rolesH.Toggle(ctx, env, roles.GroupActivity, tok.Arg(0))
	case token.KeyCourse:
		return d.rolesH.Toggle(ctx, env, roles.GroupCourses, tok.Arg(0))

	case token.KeyPoll:
		return d.pollsH.Vote(ctx, env, tok.Arg(0), tok.Arg(1))
	case token.KeyPollStats:
		return d.pollsH.Stats(ctx, env, tok.Arg(0), tok.Arg(1))

	case token.KeyQuiz:
		s, err := quiz.ParseStart(tok)
		if err != nil {
			slog.Warn("dropping malformed quiz token", "token", env.CustomID, "error", err)
			return nil
		}
		return d.quizH.Start(ctx, env, s)
	case token.KeyQuizGame:
		g, err := quiz.ParseGame(tok)
		if err != nil {
			slog.Warn("dropping malformed quiz token", "token", env.CustomID, "error", err)
			return nil
		}
		return d.quizH.Progress(ctx, env, g)

	case token.KeyHelp:
		// Informational buttons carry no behavior.
		return nil
	}

	slog.Warn("dropping component with unknown routing key", "key", tok.Key, "user", env.UserID)
	return nil
}

func (d *Dispatcher) routeAutocomplete(ctx context.Context, env models.Envelope) error {
	choices, err := d.index.Query(autocomplete.Field(env.Focused), env.Partial)
	if err != nil {
		slog.Warn("dropping autocomplete for unknown field", "field", env.Focused, "error", err)
		return nil
	}
	return d.client.RespondChoices(ctx, env, choices)
}

// audit sends one entry to the log channel describing actor, kind, and raw
// payload. Fire-and-forget: a delivery failure is logged, never surfaced.
func (d *Dispatcher) audit(ctx context.Context, env models.Envelope) {
	if d.cfg.LogChannelID == "" {
		return
	}

	payload := env.Command
	switch env.Kind {
	case models.KindComponent:
		payload = env.CustomID
	case models.KindAutocomplete:
		payload = env.Focused + ":" + env.Partial
	}

	panel := models.Panel{
		Title: "Interaction",
		Fields: []models.PanelField{
			{Name: "Actor", Value: env.UserTag},
			{Name: "Kind", Value: env.Kind},
			{Name: "Payload", Value: payload},
		},
		Footer: uuid.NewString(),
	}

	if _, err := d.client.Send(ctx, d.cfg.LogChannelID, platform.Message{Panel: &panel}); err != nil {
		slog.Warn("audit delivery failed", "interaction_id", env.ID, "error", err)
	}
}

func (d *Dispatcher) failureReply(ctx context.Context, env models.Envelope) {
	err := d.client.Reply(ctx, env, platform.Reply{
		Content:   "Something went wrong handling that. Try again in a moment.",
		Ephemeral: true,
	})
	if err != nil {
		slog.Debug("failure reply not delivered", "interaction_id", env.ID, "error", err)
	}
}
