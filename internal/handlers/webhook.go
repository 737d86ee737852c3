package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plexhooks/plex-slack-relay/internal/events"
	"github.com/plexhooks/plex-slack-relay/internal/models"
)

// Notifier dispatches one best-effort notification for an allowed event.
// The concrete implementation is fire-and-forget; handlers never learn
// whether delivery succeeded.
type Notifier interface {
	Notify(p models.Payload, action string)
}

// RegisterWebhookRoutes registers the single ingestion endpoint.
//
// POST /
// - Accepts the payload as a JSON body or as a multipart "payload" field
//   (Plex sends multipart when a thumbnail is attached; the thumb is ignored)
// - Responds 200 regardless of whether a notification fired
// - Responds 400 only when no payload could be extracted at all
func RegisterWebhookRoutes(r gin.IRoutes, n Notifier) {
	r.POST("/", func(c *gin.Context) {
		payload, err := extractPayload(c)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if payload.Event == "" {
			c.String(http.StatusBadRequest, "event required")
			return
		}

		action, ok := events.Action(payload.Event)
		if !ok {
			log.Printf("%s is not an allowed webhook", payload.Event)
			c.Status(http.StatusOK)
			return
		}

		n.Notify(*payload, action)
		c.Status(http.StatusOK)
	})
}

// extractPayload pulls the Plex payload out of either transport variant,
// chosen by Content-Type. Multipart carries the payload as a JSON-encoded
// form field alongside an optional binary thumb that is never read.
func extractPayload(c *gin.Context) (*models.Payload, error) {
	if c.ContentType() == "multipart/form-data" {
		raw := c.PostForm("payload")
		if raw == "" {
			return nil, errors.New("payload field required")
		}
		var p models.Payload
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, errors.New("invalid JSON payload")
		}
		return &p, nil
	}

	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.New("invalid JSON payload")
	}
	if req.Payload == nil {
		return nil, errors.New("payload required")
	}
	return req.Payload, nil
}
