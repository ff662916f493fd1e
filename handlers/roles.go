// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/models"
	"github.com/danielhkuo/guildhall/platform"
	"github.com/danielhkuo/guildhall/roles"
)

// RoleHandler serves role-toggle button clicks.
type RoleHandler struct {
	toggler *roles.Toggler
	client  platform.Messenger
	catalog *catalog.Catalog
}

func NewRoleHandler(toggler *roles.Toggler, client platform.Messenger, cat *catalog.Catalog) *RoleHandler {
	return &RoleHandler{toggler: toggler, client: client, catalog: cat}
}

// Toggle applies a role toggle and confirms it ephemerally. Resolution
// failures are user-visible but never mutate membership.
func (h *RoleHandler) Toggle(ctx context.Context, env models.Envelope, group roles.Group, roleName string) error {
	if !env.InGuild() {
		return h.client.Reply(ctx, env, platform.Reply{
			Content:   "Roles can only be changed inside a community.",
			Ephemeral: true,
		})
	}

	res, err := h.toggler.Toggle(ctx, env.GuildID, env.UserID, group, roleName)
	if errors.Is(err, roles.ErrRoleNotFound) || errors.Is(err, roles.ErrUnknownGroup) {
		slog.Warn("role toggle rejected", "user", env.UserID, "group", group, "role", roleName, "error", err)
		return h.client.Reply(ctx, env, platform.Reply{
			Content:   "That role is not available right now.",
			Ephemeral: true,
		})
	}
	if err != nil {
		return err
	}

	label := res.Role.Name
	if group == roles.GroupCourses {
		if course := h.catalog.Snapshot().CourseForRole(res.Role.Name); course != "" {
			label = course
		}
	}

	content := "Added " + label + "."
	if res.Outcome == roles.Removed {
		content = "Removed " + label + "."
	}

	slog.Info("role toggled", "user", env.UserID, "group", group, "role", res.Role.Name, "outcome", res.Outcome)
	return h.client.Reply(ctx, env, platform.Reply{Content: content, Ephemeral: true})
}
