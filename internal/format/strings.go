// Package format provides small formatting helpers shared by the display
// layers: byte humanization and rune-aware truncation.
package format

// TruncateRunes truncates a string to maxLen runes (Unicode-aware).
// Returns the full string if it's shorter than maxLen runes.
func TruncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// TruncateWithEllipsis truncates a string to maxWidth runes, appending "..."
// if the string exceeds the limit. If maxWidth is less than 4, the string
// is hard-truncated without an ellipsis suffix.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}

	if maxWidth < 4 {
		return string(runes[:maxWidth])
	}

	return string(runes[:maxWidth-3]) + "..."
}
