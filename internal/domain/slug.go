package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrimDash = regexp.MustCompile(`^-+|-+$`)
)

// Slugify turns free text into a url-safe slug ("Abrasive Belts 2x72" ->
// "abrasive-belts-2x72").
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugTrimDash.ReplaceAllString(s, "")
	return s
}
