// Package markup provides the string-safety helpers shared by every
// component that emits HTML or SVG: escaping for attribute values and text
// nodes, and length-capped truncation for card labels.
package markup

import "strings"

// Ellipsis is the single character appended to truncated strings.
const Ellipsis = '…'

// escaper rewrites the characters that are unsafe inside HTML attribute
// values and SVG text nodes. A single pass, so an already escaped entity is
// never escaped twice within one call; callers must still apply Escape
// exactly once, after truncation.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape returns s with &, <, > and " replaced by their character entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Truncate caps s at max characters. Strings of max characters or fewer are
// returned unchanged; longer strings keep their first max-1 characters and
// get a trailing ellipsis, so the result is always exactly max characters.
// Characters are counted as runes, not bytes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + string(Ellipsis)
}
