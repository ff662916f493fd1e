// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Guildhall assistant server.

Guildhall is a community-management assistant for a group chat platform.
The platform delivers user interactions (slash commands, button clicks,
autocomplete queries) as signed webhook POSTs; the assistant replies with
rich message panels, toggles membership roles, runs persisted polls, and
hosts a token-encoded trivia game in private scoped channels.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	DATABASE_URL=guildhall.db GUILD_ID=... go run main.go

Or with flags:

	go run main.go -p 3319 -d guildhall.db -t sqlite -guild 1234

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or postgres connection string
  - GUILD_ID (-guild): the community the assistant serves
  - LOG_CHANNEL_ID (-log-channel): audit panel destination
  - PLATFORM_BASE_URL (-platform-url): platform REST API base
  - PLATFORM_TOKEN (-platform-token): bot credential
  - WEBHOOK_SECRET (-webhook-secret): HMAC secret for inbound deliveries

Optional settings:

  - PORT (-p): server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CONFIG_DIR (-c): catalog directory (default: config)
  - QUIZ_CATEGORY_ID (-quiz-category): parent for quiz channels

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: interaction dispatcher, role/poll/quiz handlers, commands
  - router: route definitions using Go 1.22+ routing
  - middleware: signature verification, logging, JSON helpers
  - models: interaction envelope, poll ledger, panel types
  - token: typed colon-delimited action tokens
  - catalog: YAML configuration snapshots with fsnotify reload
  - roles: role group resolution and toggle policy
  - pollstore: serialized poll persistence over sqlite/postgres
  - quiz: the stateless trivia state machine
  - autocomplete: lazily built per-field suggestion lists
  - platform: the chat platform REST boundary
  - auth: webhook signatures and random IDs
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
