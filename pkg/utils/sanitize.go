package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// plainText strips every tag; it is safe for concurrent use once built.
var plainText = bluemonday.StrictPolicy()

// SanitizeText removes markup from user-supplied text before it is stored.
// The result is plain text: bluemonday's entity escaping is undone so quotes,
// ampersands and comparisons survive as typed. Escaping is the renderer's job.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}
