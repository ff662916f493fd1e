// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roles resolves configured role groups and applies toggle semantics.

# Groups

Six groups are configured in the catalog. Three are exclusive (color, year,
program): a user holds at most one member at a time, and selecting one
deselects the rest. Three are independent (notification, activity, courses):
each member toggles on its own.

# Registry

Role names in the catalog are display names; the live community assigns the
ids. The Registry resolves a group's names against the guild role list on
first use and caches the handles for the life of the process. A group that
resolves only partially is served but not cached, so the next request
retries; this covers roles created after startup without a restart.

# Toggler

Toggle is the single mutation entry point:

	res, err := toggler.Toggle(ctx, guildID, userID, roles.GroupColor, "Crimson")

Held role: removed. Not held, independent group: added. Not held, exclusive
group: all siblings removed first, then added. The sibling removal is issued
unconditionally since removes are idempotent on the platform side. A failed
name resolution returns ErrRoleNotFound before any mutation.
*/
package roles
