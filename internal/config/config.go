package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"TradeEdge/internal/batch"
	"TradeEdge/internal/model"
	"TradeEdge/internal/scorer"
)

// Config holds all application configuration. Scoring works with an
// all-default config; the file only carries overrides and watch-mode
// settings.
type Config struct {
	Weights     model.WeightSet `yaml:"weights"`
	EVThreshold float64         `yaml:"ev_threshold"`
	Watch       struct {
		Cron   string `yaml:"cron"`
		Input  string `yaml:"input"`
		Output string `yaml:"output"`
	} `yaml:"watch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("EV_THRESHOLD"); v != "" {
		var threshold float64
		if _, err := fmt.Sscanf(v, "%f", &threshold); err == nil {
			cfg.EVThreshold = threshold
		}
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Weights == nil {
		cfg.Weights = scorer.DefaultWeights()
	}
	if cfg.EVThreshold == 0 {
		cfg.EVThreshold = scorer.DefaultEVThreshold
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that the weight set carries all five signal keys.
func (c *Config) Validate() error {
	for _, key := range []string{
		model.SignalAnalystsRatings,
		model.SignalSmartScore,
		model.SignalNetOptionsSentiment,
		model.SignalNetSocialSentiment,
		model.SignalUpsideBreakout,
	} {
		if _, ok := c.Weights[key]; !ok {
			return fmt.Errorf("weights.%s is required", key)
		}
	}
	return nil
}

// ValidateWatch checks the additional fields watch mode needs.
func (c *Config) ValidateWatch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Watch.Input == "" {
		return fmt.Errorf("watch.input is required")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// Options builds the batch options from this config.
func (c *Config) Options() batch.Options {
	return batch.Options{
		Weights:     c.Weights,
		EVThreshold: c.EVThreshold,
	}
}
