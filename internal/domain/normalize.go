package domain

import (
	"strings"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
