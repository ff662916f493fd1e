// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags loads an optional .env file (via godotenv), then returns a
Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: webhook listen port (default: 3319)
  - DatabaseURL: sqlite file path or postgres connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - ConfigDir: catalog directory (default: "config")
  - GuildID: the community this process serves (required)
  - LogChannelID: audit log channel (required)
  - QuizCategoryID: parent category for scoped quiz channels (optional)
  - PlatformBaseURL: platform REST base URL (required)
  - PlatformToken: platform API token (required)
  - WebhookSecret: HMAC secret for inbound deliveries (required)

# CLI Flags

	-p              Webhook listen port
	-d              Database URL
	-t              Database type
	-c              Catalog config directory
	-guild          Community ID
	-log-channel    Audit log channel ID
	-quiz-category  Quiz channel category ID
	-platform-url   Platform REST base URL
	-platform-token Platform API token
	-webhook-secret Webhook signing secret

# Environment Variables

Flags fall back to environment variables (PORT, DATABASE_URL,
DATABASE_TYPE, CONFIG_DIR, GUILD_ID, LOG_CHANNEL_ID, QUIZ_CATEGORY_ID,
PLATFORM_BASE_URL, PLATFORM_TOKEN, WEBHOOK_SECRET). CLI flags take
precedence over environment variables, which take precedence over .env.
*/
package cliparse
