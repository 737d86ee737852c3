package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PostSendsMessageJSON(t *testing.T) {
	var got Message
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	msg := Message{
		Channel:   "#plex",
		Username:  "Plex",
		IconEmoji: ":plex:",
		Attachments: []Attachment{
			{Fallback: "fallback", Title: "Movie (1999)", Footer: "Started by bob"},
		},
	}

	err := NewClient(srv.URL).Post(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, msg, got)
}

func TestClient_PostRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Post(context.Background(), Message{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_PostFailsOnUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := NewClient(srv.URL).Post(context.Background(), Message{})
	assert.Error(t, err)
}
