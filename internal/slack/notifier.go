package slack

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/plexhooks/plex-slack-relay/internal/format"
	"github.com/plexhooks/plex-slack-relay/internal/models"
)

// Fixed identity and styling for every message the relay sends.
const (
	username   = "Plex"
	iconEmoji  = ":plex:"
	fallback   = "Required plain-text summary of the attachment."
	colorAmber = "#a67a2d"
)

// Notifier builds Slack messages for allowed Plex events and dispatches
// them best-effort.
type Notifier struct {
	client  *Client
	channel string
}

// NewNotifier returns a notifier posting through client into channel.
// An empty channel leaves the webhook's default channel in effect.
func NewNotifier(client *Client, channel string) *Notifier {
	return &Notifier{
		client:  client,
		channel: channel,
	}
}

// Notify dispatches one notification for the payload and returns
// immediately. Delivery is fire-and-forget: the post runs in its own
// goroutine and a failure is logged, never surfaced. Inbound webhook
// handling must not block on, or fail because of, Slack.
func (n *Notifier) Notify(p models.Payload, action string) {
	id := uuid.New().String()
	msg := n.buildMessage(p, action)

	log.Printf("dispatching notification %s: %s %q", id, action, msg.Attachments[0].Title)

	go func() {
		if err := n.client.Post(context.Background(), msg); err != nil {
			log.Printf("notification %s dropped: %v", id, err)
		}
	}()
}

// buildMessage assembles the single-attachment message for one event.
func (n *Notifier) buildMessage(p models.Payload, action string) Message {
	footer := fmt.Sprintf("%s by %s", action, p.Account.Title)
	if p.Server != nil && p.Server.Title != "" {
		footer = fmt.Sprintf("%s on %s", footer, p.Server.Title)
	}

	return Message{
		Channel:   n.channel,
		Username:  username,
		IconEmoji: iconEmoji,
		Attachments: []Attachment{
			{
				Fallback:   fallback,
				Color:      colorAmber,
				Title:      format.Title(p.Metadata),
				Text:       format.Subtitle(p.Metadata),
				Footer:     footer,
				FooterIcon: p.Account.Thumb,
			},
		},
	}
}
