// Package embed resolves a game's player entries into renderable
// markup. Entries are operator-supplied and rendered without
// sanitization; TrustedMarkup makes that decision explicit at the type
// level instead of leaving it implicit in string plumbing.
package embed

import (
	"errors"
	"fmt"
	"strings"
)

// TrustedMarkup is HTML injected verbatim into the page. Anything
// converted to this type bypasses escaping downstream.
type TrustedMarkup string

var ErrNoTransmission = errors.New("no transmission available")

const playerTemplate = `<iframe src="%s" width="100%%" height="100%%" frameborder="0" allowfullscreen allow="autoplay; encrypted-media; fullscreen; picture-in-picture; web-share" referrerpolicy="no-referrer-when-downgrade"></iframe>`

const adminTemplate = `<iframe src="%s" width="100%%" height="400" frameborder="0" allowfullscreen></iframe>`

// IsMarkup reports whether the entry already carries iframe markup.
func IsMarkup(entry string) bool {
	return strings.Contains(entry, "<iframe")
}

// FromLink wraps a bare stream URL in the full-size player iframe. No
// sandbox or CSP is applied so arbitrary providers keep working.
func FromLink(link string) TrustedMarkup {
	return TrustedMarkup(fmt.Sprintf(playerTemplate, link))
}

// ConvertEntry is the admin-side storage conversion: bare links become
// fixed-height iframes, existing markup and empty slots pass through.
func ConvertEntry(entry string) string {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return ""
	}
	if IsMarkup(trimmed) {
		return trimmed
	}
	return fmt.Sprintf(adminTemplate, trimmed)
}

// Available returns the non-empty entries in slot order.
func Available(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			out = append(out, entry)
		}
	}
	return out
}

// Count is the number of players exposed to the UI for cycling.
func Count(entries []string) int {
	return len(Available(entries))
}

// NextIndex and PrevIndex wrap modulo the available-player count.
func NextIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current + 1) % count
}

func PrevIndex(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current - 1 + count) % count
}

// Resolve returns the markup for the requested player slot among the
// available entries, wrapping out-of-range slots modulo the count.
func Resolve(entries []string, slot int) (TrustedMarkup, error) {
	available := Available(entries)
	if len(available) == 0 {
		return "", ErrNoTransmission
	}

	if slot < 0 {
		slot = 0
	}
	entry := strings.TrimSpace(available[slot%len(available)])

	if IsMarkup(entry) {
		return TrustedMarkup(entry), nil
	}
	return FromLink(entry), nil
}
