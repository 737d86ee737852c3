package main

import (
	"fmt"
	"log"

	"github.com/plexhooks/plex-slack-relay/internal/config"
	"github.com/plexhooks/plex-slack-relay/internal/httpserver"
	"github.com/plexhooks/plex-slack-relay/internal/slack"
)

// main boots the relay: config → Slack client → notifier → HTTP server.
func main() {
	// Load runtime config from environment (SLACK_URL, SLACK_CHANNEL, PORT).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	notifier := slack.NewNotifier(slack.NewClient(cfg.SlackURL), cfg.SlackChannel)

	router := httpserver.NewRouter(notifier)

	log.Printf("relay started on :%d", cfg.Port)
	log.Fatal(router.Run(fmt.Sprintf(":%d", cfg.Port)))
}
