package models

// WebhookRequest is the POST / body for the JSON transport variant.
// Plex can also deliver the same payload as a multipart form field.
type WebhookRequest struct {
	Payload *Payload `json:"payload"`
}

// Payload is one Plex webhook event: what happened, to which media item,
// triggered by which account, on which server.
type Payload struct {
	Event    string   `json:"event"`
	Metadata Metadata `json:"Metadata"`
	Account  Account  `json:"Account"`
	Server   *Server  `json:"Server,omitempty"`
}

// Metadata describes the media item the event refers to. Which fields are
// populated depends on Type (movie, episode, track). Zero values mean the
// field was absent from the webhook.
type Metadata struct {
	Title                 string `json:"title,omitempty"`
	Type                  string `json:"type,omitempty"`
	Year                  int    `json:"year,omitempty"`
	GrandparentTitle      string `json:"grandparentTitle,omitempty"`
	ParentTitle           string `json:"parentTitle,omitempty"`
	Index                 int    `json:"index,omitempty"`
	ParentIndex           int    `json:"parentIndex,omitempty"`
	OriginallyAvailableAt string `json:"originallyAvailableAt,omitempty"`
	Tagline               string `json:"tagline,omitempty"`
	Summary               string `json:"summary,omitempty"`
}

// Account is the Plex user who triggered the event.
type Account struct {
	Title string `json:"title"`
	Thumb string `json:"thumb"`
}

// Server is the originating Plex server instance. Older server versions
// omit this block entirely.
type Server struct {
	Title string `json:"title"`
}
