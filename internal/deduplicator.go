package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Deduplicator removes exact repeats of captured events
type Deduplicator struct{}

// NewDeduplicator creates a new Deduplicator
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Deduplicate removes events whose content hash was already seen, keeping
// the first occurrence and the original order
func (d *Deduplicator) Deduplicate(events []ActivityEvent) []ActivityEvent {
	seen := make(map[string]bool, len(events))
	unique := make([]ActivityEvent, 0, len(events))

	for _, event := range events {
		hash := d.HashEvent(&event)
		if !seen[hash] {
			seen[hash] = true
			unique = append(unique, event)
		}
	}

	return unique
}

// HashEvent creates a content-based hash for an event
func (d *Deduplicator) HashEvent(event *ActivityEvent) string {
	h := sha256.New()

	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	write(strconv.FormatInt(event.Timestamp.UnixMilli(), 10))
	write(string(event.Type))
	write(event.Source)
	write(event.Title)
	write(event.Description)
	if event.Content != nil {
		write(event.Content.Text)
		write(event.Content.Code)
		write(event.Content.Summary)
		for _, hl := range event.Content.Highlights {
			write(hl)
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
