// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/platform"
	"github.com/danielhkuo/guildhall/pollstore"
	"github.com/danielhkuo/guildhall/token"
)

// errOptionGone marks a vote for an option index the poll no longer has.
var errOptionGone = errors.New("option no longer exists")

const barWidth = 10

// PollHandler serves poll vote and stats button clicks.
type PollHandler struct {
	store  *pollstore.Store
	client platform.Messenger
}

func NewPollHandler(store *pollstore.Store, client platform.Messenger) *PollHandler {
	return &PollHandler{store: store, client: client}
}

// Vote applies one vote click for the acting user:
//
//   - no prior vote: record it
//   - same option again: retract it
//   - different option: move it, total votes unchanged
//
// The mutation runs through the store's serialized update, so concurrent
// clicks on the same poll cannot lose each other. A missing poll or option
// is rejected with an ephemeral reply and no mutation.
func (h *PollHandler) Vote(ctx context.Context, env models.Envelope, pollID, optionArg string) error {
	idx, convErr := strconv.Atoi(optionArg)

	var updated *models.Poll
	var err error
	if convErr != nil {
		err = errOptionGone
	} else {
		updated, err = h.store.Update(ctx, pollID, func(p *models.Poll) error {
			if idx < 0 || idx >= len(p.Options) {
				return errOptionGone
			}

			pi := p.ParticipantIndex(env.UserID)
			switch {
			case pi < 0:
				p.Counts[idx]++
				p.Votes++
				p.Participants = append(p.Participants, models.Participant{
					UserID:     env.UserID,
					DisplayTag: env.UserTag,
					Option:     idx,
				})
			case p.Participants[pi].Option == idx:
				p.Counts[idx]--
				p.Votes--
				p.Participants = append(p.Participants[:pi], p.Participants[pi+1:]...)
			default:
				p.Counts[p.Participants[pi].Option]--
				p.Counts[idx]++
				p.Participants[pi].Option = idx
			}
			return nil
		})
	}

	if errors.Is(err, pollstore.ErrNotFound) || errors.Is(err, errOptionGone) {
		slog.Warn("vote rejected", "poll_id", pollID, "option", optionArg, "error", err)
		return h.client.Reply(ctx, env, platform.Reply{
			Content:   "This poll or option no longer exists.",
			Ephemeral: true,
		})
	}
	if err != nil {
		return err
	}

	slog.Info("vote applied", "poll_id", pollID, "user", env.UserID, "option", idx)

	msg := VoteMessage(updated)
	return h.client.EditMessage(ctx, env.ChannelID, env.MessageID, msg)
}

// Stats refreshes the stats panel in place and replies ephemerally with the
// voter list for the chosen option.
func (h *PollHandler) Stats(ctx context.Context, env models.Envelope, pollID, optionArg string) error {
	poll, err := h.store.Get(ctx, pollID)
	if errors.Is(err, pollstore.ErrNotFound) {
		return h.client.Reply(ctx, env, platform.Reply{
			Content:   "This poll no longer exists.",
			Ephemeral: true,
		})
	}
	if err != nil {
		return err
	}

	idx, convErr := strconv.Atoi(optionArg)
	if convErr != nil || idx < 0 || idx >= len(poll.Options) {
		return h.client.Reply(ctx, env, platform.Reply{
			Content:   "This poll or option no longer exists.",
			Ephemeral: true,
		})
	}

	if err := h.client.EditMessage(ctx, env.ChannelID, env.MessageID, StatsMessage(poll)); err != nil {
		return err
	}

	var voters []string
	for _, part := range poll.Participants {
		if part.Option == idx {
			voters = append(voters, part.DisplayTag)
		}
	}

	content := "No votes yet for " + poll.Options[idx] + "."
	if len(voters) > 0 {
		content = poll.Options[idx] + ": " + strings.Join(voters, ", ")
	}
	return h.client.Reply(ctx, env, platform.Reply{Content: content, Ephemeral: true})
}

// VoteMessage renders the poll panel with one vote button per option.
func VoteMessage(p *models.Poll) platform.Message {
	panel := models.Panel{
		Title:  p.Title,
		Fields: optionFields(p),
		Footer: humanize.Comma(int64(p.Votes)) + " votes",
	}

	buttons := make([]models.Button, len(p.Options))
	for i, opt := range p.Options {
		buttons[i] = models.Button{
			Token: token.New(token.KeyPoll, p.ID, strconv.Itoa(i)).Encode(),
			Label: opt,
		}
	}
	return platform.Message{Panel: &panel, Buttons: buttons}
}

// StatsMessage renders the stats panel with one voter-list button per
// option.
func StatsMessage(p *models.Poll) platform.Message {
	panel := models.Panel{
		Title:  p.Title + " (stats)",
		Fields: optionFields(p),
		Footer: humanize.Comma(int64(p.Votes)) + " votes",
	}

	buttons := make([]models.Button, len(p.Options))
	for i, opt := range p.Options {
		buttons[i] = models.Button{
			Token: token.New(token.KeyPollStats, p.ID, strconv.Itoa(i)).Encode(),
			Label: opt,
			Style: "secondary",
		}
	}
	return platform.Message{Panel: &panel, Buttons: buttons}
}

func optionFields(p *models.Poll) []models.PanelField {
	fields := make([]models.PanelField, len(p.Options))
	for i, opt := range p.Options {
		pct := 0
		if p.Votes > 0 {
			pct = p.Counts[i] * 100 / p.Votes
		}
		fields[i] = models.PanelField{
			Name:  opt,
			Value: bar(pct) + " " + strconv.Itoa(pct) + "% (" + strconv.Itoa(p.Counts[i]) + ")",
		}
	}
	return fields
}

func bar(pct int) string {
	filled := pct * barWidth / 100
	return strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)
}
