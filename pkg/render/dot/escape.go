package dot

import "strings"

var quotedReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

// escapeQuoted escapes text for use inside a double-quoted DOT string.
func escapeQuoted(s string) string {
	return quotedReplacer.Replace(s)
}

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// escapeHTML escapes text for use inside an HTML-like label.
func escapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}
