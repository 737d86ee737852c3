package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plexhooks/plex-slack-relay/internal/handlers"
)

// NewRouter wires the webhook endpoint, liveness probe, and the two
// terminal error responders (unmatched route → 404, panic → 500).
func NewRouter(n handlers.Notifier) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Logger())

	// Panics surface as plain text with the panic value as the message.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.String(http.StatusInternalServerError, fmt.Sprintf("%v", err))
	}))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterWebhookRoutes(r, n)

	// Anything outside the routed surface gets a plain-text 404.
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not Found")
	})

	return r
}
