package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <input>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML, written unescaped
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a document node.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name, lower case (e.g., "input")
	Props    Props   // Attributes
	Children []*Node // Child nodes
	Text     string  // For KindText and KindRaw

	listeners    map[string][]listenerEntry
	nextListener ListenerID
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// ID returns the element's id attribute, or "" if it has none.
func (n *Node) ID() string {
	return n.stringProp("id")
}

// TypeAttr returns the element's type attribute exactly as written.
func (n *Node) TypeAttr() string {
	return n.stringProp("type")
}

// IsChecked reports the element's checked state. A bool prop is taken as
// is; any other value counts as a present attribute, so checked="checked"
// and checked="" are checked. The string "false" is not.
func (n *Node) IsChecked() bool {
	if n == nil || n.Props == nil {
		return false
	}
	switch v := n.Props["checked"].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return !strings.EqualFold(v, "false")
	default:
		return true
	}
}

// SetChecked sets the element's checked state.
func (n *Node) SetChecked(checked bool) {
	if n.Props == nil {
		n.Props = make(Props)
	}
	n.Props["checked"] = checked
}

// Is reports whether n is an element with the given tag, compared
// case-insensitively.
func (n *Node) Is(tag string) bool {
	return n != nil && n.Kind == KindElement && strings.EqualFold(n.Tag, tag)
}

func (n *Node) stringProp(key string) string {
	if n == nil || n.Props == nil {
		return ""
	}
	s, _ := n.Props[key].(string)
	return s
}
