package config

import (
	"testing"
	"time"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DATABASE_DSN", "postgres://localhost/pontos")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without DISCORD_TOKEN")
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DATABASE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without DATABASE_DSN")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DATABASE_DSN", "postgres://localhost/pontos")
	t.Setenv("LOG_CHANNEL", "")
	t.Setenv("HISTORY_CHANNEL", "")
	t.Setenv("RESUME_WINDOW", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogChannelName != "logs" {
		t.Errorf("LogChannelName = %q, want logs", cfg.LogChannelName)
	}
	if cfg.HistoryChannelName != "historico-pontos" {
		t.Errorf("HistoryChannelName = %q, want historico-pontos", cfg.HistoryChannelName)
	}
	if cfg.ResumeWindow != 10*time.Minute {
		t.Errorf("ResumeWindow = %v, want 10m", cfg.ResumeWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DATABASE_DSN", "postgres://localhost/pontos")
	t.Setenv("LOG_CHANNEL", "registro")
	t.Setenv("HISTORY_CHANNEL", "relatorios")
	t.Setenv("RESUME_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LogChannelName != "registro" || cfg.HistoryChannelName != "relatorios" {
		t.Errorf("channel names = %q, %q", cfg.LogChannelName, cfg.HistoryChannelName)
	}
	if cfg.ResumeWindow != 30*time.Second {
		t.Errorf("ResumeWindow = %v, want 30s", cfg.ResumeWindow)
	}
}

func TestLoadRejectsBadResumeWindow(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DATABASE_DSN", "postgres://localhost/pontos")
	t.Setenv("RESUME_WINDOW", "sometimes")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a malformed RESUME_WINDOW")
	}
}
