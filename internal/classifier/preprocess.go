package classifier

import (
	"regexp"
	"strings"
)

var (
	urlRE       = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	emailRE     = regexp.MustCompile(`\S+@\S+`)
	nonLetterRE = regexp.MustCompile(`[^a-zA-Z\s.,!?]`)
	spaceRE     = regexp.MustCompile(`\s+`)
)

// Normalize applies the same cleanup the model saw during training:
// lower-case, strip URLs and email addresses, drop characters outside
// letters and basic punctuation, collapse whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = urlRE.ReplaceAllString(text, "")
	text = emailRE.ReplaceAllString(text, "")
	text = nonLetterRE.ReplaceAllString(text, "")
	text = spaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
