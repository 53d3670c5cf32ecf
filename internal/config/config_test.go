package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"TradeEdge/internal/model"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("EV_THRESHOLD", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if cfg.EVThreshold != 0.3 {
		t.Errorf("default ev_threshold = %v, want 0.3", cfg.EVThreshold)
	}
	if cfg.Watch.Cron == "" {
		t.Error("expected default watch cron")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
	sum := 0.0
	for _, w := range cfg.Weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("default weights sum %v, want 1.0", sum)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
ev_threshold: 0.5
weights:
  analysts_ratings: 0.4
  smart_score: 0.1
  net_options_sentiment: 0.2
  net_social_sentiment: 0.2
  upside_breakout: 0.1
watch:
  cron: "0 */5 * * * *"
  input: data/candidates.csv
  output: data/scored.csv
telegram:
  bot_token: token
  chat_id: chat
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EVThreshold != 0.5 {
		t.Errorf("ev_threshold = %v, want 0.5", cfg.EVThreshold)
	}
	if cfg.Weights[model.SignalAnalystsRatings] != 0.4 {
		t.Errorf("analysts weight = %v, want 0.4", cfg.Weights[model.SignalAnalystsRatings])
	}
	if cfg.Watch.Input != "data/candidates.csv" {
		t.Errorf("watch input = %q", cfg.Watch.Input)
	}
	if err := cfg.ValidateWatch(); err != nil {
		t.Errorf("watch config must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EV_THRESHOLD", "0.45")
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EVThreshold != 0.45 {
		t.Errorf("ev_threshold = %v, want env override 0.45", cfg.EVThreshold)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("bot token = %q, want env override", cfg.Telegram.BotToken)
	}
}

func TestValidate_MissingWeightKey(t *testing.T) {
	cfg := &Config{Weights: model.WeightSet{model.SignalSmartScore: 1.0}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for incomplete weight set")
	}
}

func TestValidateWatch(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.ValidateWatch(); err == nil {
		t.Error("expected error without watch.input")
	}

	cfg.Watch.Input = "data/candidates.csv"
	if err := cfg.ValidateWatch(); err != nil {
		t.Errorf("notifier-less watch config must validate: %v", err)
	}

	cfg.Telegram.BotToken = "token" // chat_id missing
	if err := cfg.ValidateWatch(); err == nil {
		t.Error("expected error for bot_token without chat_id")
	}
}

func TestOptions(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := cfg.Options()
	if opts.EVThreshold != cfg.EVThreshold {
		t.Errorf("options threshold %v != config %v", opts.EVThreshold, cfg.EVThreshold)
	}
	if len(opts.Weights) != 5 {
		t.Errorf("options weights incomplete: %v", opts.Weights)
	}
}
