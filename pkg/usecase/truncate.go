package usecase

import "strings"

const (
	truncateMarker = "…"
	emptyBodyText  = "(no content)"
)

// truncateBody normalizes and truncates an issue/PR body for a preview.
// Line endings are normalized to LF and surrounding whitespace trimmed.
// Bodies longer than limit runes are cut at the limit with a marker
// appended; re-applying with the same limit leaves the result unchanged.
// Empty bodies render as an explicit placeholder.
func truncateBody(body string, limit int) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.TrimSpace(body)

	if body == "" {
		return emptyBodyText
	}

	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}

	return string(runes[:limit]) + truncateMarker
}
