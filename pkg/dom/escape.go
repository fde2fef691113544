package dom

import (
	"html"
	"strings"
)

// attrWhitespace keeps newlines and tabs intact inside attribute values.
var attrWhitespace = strings.NewReplacer("\n", "&#10;", "\r", "&#13;", "\t", "&#9;")

func escapeAttr(s string) string {
	return attrWhitespace.Replace(html.EscapeString(s))
}
