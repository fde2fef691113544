package dom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute sets an arbitrary attribute.
func Attribute(key string, value any) Attr { return attr(key, value) }

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Type sets the type attribute.
func Type(typ string) Attr { return attr("type", typ) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Checked sets the checked state.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// booleanAttrs are rendered bare when true and omitted when false.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"selected": true,
	"readonly": true,
	"required": true,
	"hidden":   true,
	"multiple": true,
	"async":    true,
	"defer":    true,
}

func isBooleanAttr(key string) bool {
	return booleanAttrs[key]
}
