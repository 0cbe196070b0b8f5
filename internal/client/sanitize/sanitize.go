// Package sanitize neutralises user-entered text before it is stored.
package sanitize

import "html"

// Text escapes the characters that are significant in HTML (& < > " ')
// so stored content carries no live markup but keeps its text.
func Text(s string) string {
	return html.EscapeString(s)
}
