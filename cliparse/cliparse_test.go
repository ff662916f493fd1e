// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("GUILD_ID", "g1")
	t.Setenv("LOG_CHANNEL_ID", "c-log")
	t.Setenv("PLATFORM_BASE_URL", "https://platform.test/api")
	t.Setenv("PLATFORM_TOKEN", "tok")
	t.Setenv("WEBHOOK_SECRET", "secret")
}

func TestParseFlags_EnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.ConfigDir != "config" {
		t.Errorf("expected default config dir, got %q", cfg.ConfigDir)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-c", "testdata"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.ConfigDir != "testdata" {
		t.Errorf("expected config dir testdata, got %q", cfg.ConfigDir)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{"database url", "DATABASE_URL"},
		{"guild", "GUILD_ID"},
		{"log channel", "LOG_CHANNEL_ID"},
		{"platform url", "PLATFORM_BASE_URL"},
		{"platform token", "PLATFORM_TOKEN"},
		{"webhook secret", "WEBHOOK_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.omit, "")

			if _, err := ParseFlags([]string{}); err == nil {
				t.Errorf("expected error when %s missing", tt.omit)
			}
		})
	}
}

func TestParseFlags_BadDatabaseType(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_TYPE", "oracle")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_BadPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT")
	}
}

func TestParseFlags_DefaultPort(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("PORT")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3319 {
		t.Errorf("expected default port 3319, got %d", cfg.Port)
	}
}
