package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	ConfigDir      string
	GuildID        string
	LogChannelID   string
	QuizCategoryID string

	PlatformBaseURL string
	PlatformToken   string
	WebhookSecret   string
}

// ParseFlags validates flags, loading a .env file first when present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; explicit env vars and flags still apply.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("guildhall", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Webhook listen port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ConfigDir, "c", "", "Catalog config directory")

	// Community wiring
	fs.StringVar(&cfg.GuildID, "guild", "", "Community (guild) ID")
	fs.StringVar(&cfg.LogChannelID, "log-channel", "", "Audit log channel ID")
	fs.StringVar(&cfg.QuizCategoryID, "quiz-category", "", "Parent category for quiz channels")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.PlatformBaseURL, "platform-url", "", "Platform REST base URL")
	fs.StringVar(&cfg.PlatformToken, "platform-token", "", "Platform API token (prefer env)")
	fs.StringVar(&cfg.WebhookSecret, "webhook-secret", "", "Webhook signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = os.Getenv("CONFIG_DIR")
		if cfg.ConfigDir == "" {
			cfg.ConfigDir = "config"
		}
	}

	if cfg.GuildID == "" {
		cfg.GuildID = os.Getenv("GUILD_ID")
	}
	if cfg.GuildID == "" {
		return Config{}, errors.New("GUILD_ID required")
	}

	if cfg.LogChannelID == "" {
		cfg.LogChannelID = os.Getenv("LOG_CHANNEL_ID")
	}
	if cfg.LogChannelID == "" {
		return Config{}, errors.New("LOG_CHANNEL_ID required")
	}

	if cfg.QuizCategoryID == "" {
		cfg.QuizCategoryID = os.Getenv("QUIZ_CATEGORY_ID")
	}

	if cfg.PlatformBaseURL == "" {
		cfg.PlatformBaseURL = os.Getenv("PLATFORM_BASE_URL")
	}
	if cfg.PlatformBaseURL == "" {
		return Config{}, errors.New("PLATFORM_BASE_URL required")
	}

	// Secrets - MUST be provided
	if cfg.PlatformToken == "" {
		cfg.PlatformToken = os.Getenv("PLATFORM_TOKEN")
	}
	if cfg.PlatformToken == "" {
		return Config{}, errors.New("PLATFORM_TOKEN required")
	}

	if cfg.WebhookSecret == "" {
		cfg.WebhookSecret = os.Getenv("WEBHOOK_SECRET")
	}
	if cfg.WebhookSecret == "" {
		return Config{}, errors.New("WEBHOOK_SECRET required")
	}

	return cfg, nil
}
