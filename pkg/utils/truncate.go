package utils

import "strings"

// TruncateForLog shortens s to limit runes, appending an ellipsis when
// truncated. Used everywhere a model payload or response excerpt is logged
// or embedded in an error so raw bodies never leak in full.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
