package dom

import (
	"fmt"
	"strings"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// Element creates an element node with an arbitrary tag.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string, EventHandler.
func Element(tag string, args ...any) *Node {
	node := &Node{
		Kind:     KindElement,
		Tag:      strings.ToLower(tag),
		Props:    make(Props),
		Children: make([]*Node, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if !v.IsEmpty() {
				node.Props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Props[a.Key] = a.Value
				}
			}
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case EventHandler:
			node.AddEventListener(v.Event, v.Listener)
		}
	}

	return node
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*Node) *Node {
	node := &Node{Kind: KindFragment, Children: make([]*Node, 0, len(children))}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// Document structure

func HTML(args ...any) *Node  { return Element("html", args...) }
func Head(args ...any) *Node  { return Element("head", args...) }
func Body(args ...any) *Node  { return Element("body", args...) }
func Title(args ...any) *Node { return Element("title", args...) }
func Meta(args ...any) *Node  { return Element("meta", args...) }

// Content

func Div(args ...any) *Node  { return Element("div", args...) }
func Span(args ...any) *Node { return Element("span", args...) }
func P(args ...any) *Node    { return Element("p", args...) }
func H1(args ...any) *Node   { return Element("h1", args...) }
func A(args ...any) *Node    { return Element("a", args...) }
func Ul(args ...any) *Node   { return Element("ul", args...) }
func Li(args ...any) *Node   { return Element("li", args...) }
func Hr(args ...any) *Node   { return Element("hr", args...) }

// Tables

func Table(args ...any) *Node { return Element("table", args...) }
func Tr(args ...any) *Node    { return Element("tr", args...) }
func Th(args ...any) *Node    { return Element("th", args...) }
func Td(args ...any) *Node    { return Element("td", args...) }

// Forms

func Form(args ...any) *Node   { return Element("form", args...) }
func Input(args ...any) *Node  { return Element("input", args...) }
func Button(args ...any) *Node { return Element("button", args...) }
func Label(args ...any) *Node  { return Element("label", args...) }
