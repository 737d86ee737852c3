// Package events holds the allow-list of Plex webhook events worth
// notifying about.
package events

// actions maps each allowed event name to its past-tense action label.
// Matching is exact: no prefixes, no case folding.
var actions = map[string]string{
	"media.play":     "Started",
	"media.scrobble": "Finished",
	"media.rate":     "Rated",
	"library.new":    "Added",
}

// Action returns the action label for an event name, and whether the event
// is on the allow-list at all. Events outside the list are dropped by the
// caller.
func Action(event string) (string, bool) {
	label, ok := actions[event]
	return label, ok
}
