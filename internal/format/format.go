// Package format turns Plex media metadata into the human-readable
// title/subtitle pair shown in notifications. All functions are pure and
// total: every input produces a defined string.
package format

import (
	"fmt"

	"github.com/plexhooks/plex-slack-relay/internal/models"
)

// Title returns the headline for a media item. Episodes and tracks carry a
// grandparent title (the show or artist), which wins outright; otherwise
// the item's own title is used, with the release year appended when known.
func Title(m models.Metadata) string {
	if m.GrandparentTitle != "" {
		return m.GrandparentTitle
	}
	if m.Year != 0 {
		return fmt.Sprintf("%s (%d)", m.Title, m.Year)
	}
	return m.Title
}

// Subtitle returns the secondary line for a media item.
//
// With a grandparent title present the prefix is chosen by priority:
// the album (parent title) for tracks, then "S<season> E<episode>" when
// both indexes are known, then the original air date. The item title is
// appended after " - " when present.
//
// Movies fall back to their summary, then tagline. Anything else gets an
// empty subtitle.
func Subtitle(m models.Metadata) string {
	if m.GrandparentTitle != "" {
		var ret string
		switch {
		case m.Type == "track":
			ret = m.ParentTitle
		case m.Index != 0 && m.ParentIndex != 0:
			ret = fmt.Sprintf("S%d E%d", m.ParentIndex, m.Index)
		case m.OriginallyAvailableAt != "":
			ret = m.OriginallyAvailableAt
		}
		if m.Title != "" {
			ret += " - " + m.Title
		}
		return ret
	}

	if m.Type == "movie" {
		if m.Summary != "" {
			return m.Summary
		}
		return m.Tagline
	}

	return ""
}
