// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roles

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/guildhall/catalog"
	"github.com/danielhkuo/guildhall/platform"
)

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrUnknownGroup = errors.New("unknown role group")
)

// Policy is the mutual-exclusion rule attached to a role group.
type Policy int

const (
	// Exclusive: selecting a member deselects all others in the group.
	Exclusive Policy = iota
	// Independent: members are toggled individually.
	Independent
)

// Group identifies one configured role set.
type Group string

const (
	GroupColor        Group = "color"
	GroupYear         Group = "year"
	GroupProgram      Group = "program"
	GroupNotification Group = "notification"
	GroupActivity     Group = "activity"
	GroupCourses      Group = "courses"
)

// Policy returns the exclusivity rule for the group.
func (g Group) Policy() Policy {
	switch g {
	case GroupColor, GroupYear, GroupProgram:
		return Exclusive
	}
	return Independent
}

// Valid reports whether g is one of the configured groups.
func (g Group) Valid() bool {
	switch g {
	case GroupColor, GroupYear, GroupProgram, GroupNotification, GroupActivity, GroupCourses:
		return true
	}
	return false
}

// Registry lazily resolves configured role names to live role handles and
// caches them for the life of the process. A group's set is cached only
// once every configured name resolved; until then each call re-resolves,
// matching the refresh-once-if-empty behavior of the source design.
type Registry struct {
	catalog *catalog.Catalog
	backend platform.RoleManager

	mu   sync.Mutex
	sets map[Group][]platform.Role
}

func NewRegistry(cat *catalog.Catalog, backend platform.RoleManager) *Registry {
	return &Registry{
		catalog: cat,
		backend: backend,
		sets:    make(map[Group][]platform.Role),
	}
}

// Roles returns the resolved member set for a group, refreshing the cache
// if it is empty.
func (r *Registry) Roles(ctx context.Context, guildID string, group Group) ([]platform.Role, error) {
	if !group.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	r.mu.Lock()
	cached := r.sets[group]
	r.mu.Unlock()
	if len(cached) > 0 {
		return cached, nil
	}

	names := r.catalog.Snapshot().RoleNames(string(group))
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: group %q has no configured roles", ErrRoleNotFound, group)
	}

	live, err := r.backend.GuildRoles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("roles: list guild roles: %w", err)
	}

	byName := make(map[string]platform.Role, len(live))
	for _, role := range live {
		byName[role.Name] = role
	}

	resolved := make([]platform.Role, 0, len(names))
	complete := true
	for _, name := range names {
		role, ok := byName[name]
		if !ok {
			complete = false
			continue
		}
		resolved = append(resolved, role)
	}

	// A partially resolved set is returned but not cached, so a later call
	// retries once the missing roles exist.
	if complete {
		r.mu.Lock()
		r.sets[group] = resolved
		r.mu.Unlock()
	}

	return resolved, nil
}

// Role resolves a role name within a group's member set.
func (r *Registry) Role(ctx context.Context, guildID string, group Group, name string) (platform.Role, error) {
	set, err := r.Roles(ctx, guildID, group)
	if err != nil {
		return platform.Role{}, err
	}

	for _, role := range set {
		if role.Name == name {
			return role, nil
		}
	}
	return platform.Role{}, fmt.Errorf("%w: %q in group %q", ErrRoleNotFound, name, group)
}
