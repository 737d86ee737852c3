package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultPort is used when PORT is unset.
const defaultPort = 3000

// Config contains runtime configuration required by the relay. It is built
// once at startup and never mutated afterwards.
type Config struct {
	SlackURL     string // Slack incoming-webhook endpoint
	SlackChannel string // optional channel override; empty keeps the webhook default
	Port         int
}

// Load reads required values from environment variables:
//
//	SLACK_URL     (required) incoming-webhook URL
//	SLACK_CHANNEL (optional) channel the messages are posted to
//	PORT          (optional) listen port, default 3000
func Load() (Config, error) {
	slackURL := strings.TrimSpace(os.Getenv("SLACK_URL"))
	if slackURL == "" {
		return Config{}, errors.New("SLACK_URL required")
	}

	channel := strings.TrimSpace(os.Getenv("SLACK_CHANNEL"))

	port := defaultPort
	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			return Config{}, fmt.Errorf("PORT must be a positive integer, got %q", raw)
		}
		port = p
	}

	return Config{
		SlackURL:     slackURL,
		SlackChannel: channel,
		Port:         port,
	}, nil
}
