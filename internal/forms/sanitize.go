package forms

import (
	"html"
	"strings"
)

// SanitizeText trims surrounding whitespace and HTML-escapes the value.
// Used for every short text field.
func SanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

var restrictedEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
)

// SanitizeLongText trims and applies the restricted escape used for
// book summaries and genre names: only & < > { } are mapped to entity
// codes, single and double quotes pass through unchanged so quoted
// text renders as written. This reopens quote-based attribute
// injection, so templates must never place these values inside HTML
// attributes. Handlers call this exactly once per write; re-applying
// it would double-escape the ampersands of already-escaped entities.
func SanitizeLongText(s string) string {
	return restrictedEscaper.Replace(strings.TrimSpace(s))
}

// NormalizeMulti coerces a multi-select field to a slice: an absent
// field becomes an empty slice, anything else is copied with each
// element sanitized. A scalar submission arrives from the form decoder
// as a one-element slice already.
func NormalizeMulti(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, SanitizeText(v))
	}
	return out
}
