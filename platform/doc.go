// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package platform defines the external collaborator boundary: everything the
assistant asks the chat platform to do.

# Interfaces

The boundary is split by concern so handlers declare only what they need:

  - Messenger: interaction replies, channel messages, edits, deletes
  - RoleManager: the membership backend (GuildRoles, MemberRoles, AddRole,
    RemoveRoles)
  - ChannelManager: scoped channel create/list/delete
  - Responder: autocomplete choice responses

Client composes all four and is what the dispatcher holds.

# REST Implementation

NewRESTClient implements Client against the platform HTTP API:

	client := platform.NewRESTClient(cfg.PlatformBaseURL, cfg.PlatformToken)

Requests carry "Authorization: Bot <token>". A 404 maps to ErrNotFound so
callers can distinguish "already gone" from transport failure; other 4xx/5xx
statuses are plain errors.

# Suspension Points

Every method call is a suspension point: handlers must not assume the world
is unchanged across a call. No retries are performed; each operation is
attempted exactly once per user action.
*/
package platform
