// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package platform

import (
	"context"
	"errors"

	"github.com/danielhkuo/guildhall/models"
)

// ErrNotFound is returned when the platform reports a missing entity
// (deleted channel, unknown message). Callers decide whether that is fatal;
// the quiz cleanup path, for example, only logs it.
var ErrNotFound = errors.New("platform: not found")

// Role is a live membership tag handle resolved from the community.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Channel is a communication channel inside a community.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Reply is an interaction response. Ephemeral replies are visible only to
// the acting user.
type Reply struct {
	Content   string          `json:"content,omitempty"`
	Panel     *models.Panel   `json:"panel,omitempty"`
	Buttons   []models.Button `json:"buttons,omitempty"`
	Ephemeral bool            `json:"ephemeral,omitempty"`
}

// Message is the payload for sending or editing a channel message.
type Message struct {
	Content string          `json:"content,omitempty"`
	Panel   *models.Panel   `json:"panel,omitempty"`
	Buttons []models.Button `json:"buttons,omitempty"`
}

// CreateChannelRequest describes a scoped channel visible to one user.
type CreateChannelRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	ViewerID string `json:"viewer_id,omitempty"`
}

// Messenger sends, edits, and deletes rich messages and interaction
// replies. Every call is a suspension point.
type Messenger interface {
	Reply(ctx context.Context, env models.Envelope, reply Reply) error
	Send(ctx context.Context, channelID string, msg Message) (messageID string, err error)
	EditMessage(ctx context.Context, channelID, messageID string, msg Message) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// RoleManager is the membership backend. Role adds and removes are
// idempotent on the platform side.
type RoleManager interface {
	GuildRoles(ctx context.Context, guildID string) ([]Role, error)
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRoles(ctx context.Context, guildID, userID string, roleIDs []string) error
}

// ChannelManager creates and destroys scoped channels.
type ChannelManager interface {
	GuildChannels(ctx context.Context, guildID string) ([]Channel, error)
	CreateChannel(ctx context.Context, guildID string, req CreateChannelRequest) (Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error
}

// Responder answers autocomplete queries.
type Responder interface {
	RespondChoices(ctx context.Context, env models.Envelope, choices []models.Choice) error
}

// Client is the full platform boundary used by the dispatcher.
type Client interface {
	Messenger
	RoleManager
	ChannelManager
	Responder
}
