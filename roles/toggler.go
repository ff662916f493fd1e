// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roles

import (
	"context"
	"fmt"

	"github.com/danielhkuo/guildhall/platform"
)

// Outcome is the observable result of a toggle: the target role was either
// granted or revoked.
type Outcome string

const (
	Added   Outcome = "added"
	Removed Outcome = "removed"
)

// Result reports what a Toggle did and to which role handle.
type Result struct {
	Outcome Outcome
	Role    platform.Role
}

// Toggler applies group-aware role toggles against the membership backend.
type Toggler struct {
	registry *Registry
	backend  platform.RoleManager
}

func NewToggler(registry *Registry, backend platform.RoleManager) *Toggler {
	return &Toggler{registry: registry, backend: backend}
}

// Toggle grants or revokes the named role for a user. If the user already
// holds the role it is removed. Otherwise it is added; for exclusive groups
// every sibling role is removed first, so the user never holds two members
// of an exclusive group. Resolution failure aborts before any mutation.
func (t *Toggler) Toggle(ctx context.Context, guildID, userID string, group Group, roleName string) (Result, error) {
	target, err := t.registry.Role(ctx, guildID, group, roleName)
	if err != nil {
		return Result{}, err
	}

	held, err := t.backend.MemberRoles(ctx, guildID, userID)
	if err != nil {
		return Result{}, fmt.Errorf("roles: member roles for %s: %w", userID, err)
	}

	for _, id := range held {
		if id == target.ID {
			if err := t.backend.RemoveRoles(ctx, guildID, userID, []string{target.ID}); err != nil {
				return Result{}, fmt.Errorf("roles: remove %s: %w", target.Name, err)
			}
			return Result{Outcome: Removed, Role: target}, nil
		}
	}

	if group.Policy() == Exclusive {
		set, err := t.registry.Roles(ctx, guildID, group)
		if err != nil {
			return Result{}, err
		}
		siblings := make([]string, 0, len(set))
		for _, role := range set {
			if role.ID != target.ID {
				siblings = append(siblings, role.ID)
			}
		}
		// The full sibling list is issued even when the user holds none of
		// them; removal is idempotent on the platform side.
		if len(siblings) > 0 {
			if err := t.backend.RemoveRoles(ctx, guildID, userID, siblings); err != nil {
				return Result{}, fmt.Errorf("roles: clear %s group: %w", group, err)
			}
		}
	}

	if err := t.backend.AddRole(ctx, guildID, userID, target.ID); err != nil {
		return Result{}, fmt.Errorf("roles: add %s: %w", target.Name, err)
	}
	return Result{Outcome: Added, Role: target}, nil
}
