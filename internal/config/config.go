// Package config loads application configuration from environment variables
// and the trigger rules file.
package config

import (
	"fmt"
	"os"
)

// Config holds the process configuration loaded from environment variables.
type Config struct {
	GitHubToken     string
	RulesPath       string
	ListenAddr      string
	DBPath          string
	SlackWebhookURL string
	WebhookSecret   string
}

// Load reads configuration from environment variables and returns a
// validated Config. APPROVEBOT_GITHUB_TOKEN is required; the process cannot
// resolve its acting identity or approve anything without it.
// Optional variables with defaults: APPROVEBOT_RULES_PATH (rules.yaml),
// APPROVEBOT_LISTEN_ADDR (127.0.0.1:3030), APPROVEBOT_DB_PATH
// (approvebot.db). APPROVEBOT_SLACK_WEBHOOK_URL and
// APPROVEBOT_WEBHOOK_SECRET are optional with no default; leaving them
// unset disables outcome notifications and signature validation.
func Load() (*Config, error) {
	token := os.Getenv("APPROVEBOT_GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("APPROVEBOT_GITHUB_TOKEN is required")
	}

	rulesPath := "rules.yaml"
	if v, ok := os.LookupEnv("APPROVEBOT_RULES_PATH"); ok {
		rulesPath = v
	}

	listenAddr := "127.0.0.1:3030"
	if v, ok := os.LookupEnv("APPROVEBOT_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "approvebot.db"
	if v, ok := os.LookupEnv("APPROVEBOT_DB_PATH"); ok {
		dbPath = v
	}

	return &Config{
		GitHubToken:     token,
		RulesPath:       rulesPath,
		ListenAddr:      listenAddr,
		DBPath:          dbPath,
		SlackWebhookURL: os.Getenv("APPROVEBOT_SLACK_WEBHOOK_URL"),
		WebhookSecret:   os.Getenv("APPROVEBOT_WEBHOOK_SECRET"),
	}, nil
}
