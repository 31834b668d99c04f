package utils

import "github.com/microcosm-cc/bluemonday"

var (
	contentPolicy = bluemonday.UGCPolicy()
	plainPolicy   = bluemonday.StrictPolicy()
)

// Sanitize cleans post and comment bodies, keeping user-generated-content
// markup while dropping anything scriptable.
func Sanitize(input string) string {
	return contentPolicy.Sanitize(input)
}

// SanitizePlain strips all markup. Used for single-line fields such as
// titles and author names.
func SanitizePlain(input string) string {
	return plainPolicy.Sanitize(input)
}
