package screen

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// singleByte drops every rune outside 7-bit ASCII.
var singleByte = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// Sanitize converts raw operator input into what the terminal would accept:
// trimmed, uppercase, single-byte only, and clipped to length.
func Sanitize(raw string, length int) string {
	return Clip(Normalize(strings.TrimSpace(raw)), length)
}

// Normalize uppercases s and removes runes outside the single-byte charset.
// Unlike Sanitize it keeps surrounding spaces, so it is safe to apply on
// every keystroke.
func Normalize(s string) string {
	v := strings.ToUpper(s)

	cleaned, _, err := transform.String(singleByte, v)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return -1
			}
			return r
		}, v)
	}
	return cleaned
}

// FormatDate formats t the way the header shows dates (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime formats t the way the header shows times (HH:MM:SS, 24h).
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}
