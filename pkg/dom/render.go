package dom

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// RenderToString renders a node tree to an HTML string.
func RenderToString(node *Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPage writes an HTML5 doctype followed by the rendered tree.
func RenderPage(w io.Writer, node *Node) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return Render(w, node)
}

// Render streams a node tree to w.
func Render(w io.Writer, node *Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return renderElement(w, node)
	case KindText:
		_, err := io.WriteString(w, html.EscapeString(node.Text))
		return err
	case KindFragment:
		return renderChildren(w, node)
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func renderElement(w io.Writer, node *Node) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if IsVoidElement(node.Tag) {
		return nil
	}
	if err := renderChildren(w, node); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

func renderChildren(w io.Writer, node *Node) error {
	for _, child := range node.Children {
		if err := Render(w, child); err != nil {
			return err
		}
	}
	return nil
}

func renderAttributes(w io.Writer, props Props) error {
	// Sort keys for deterministic output
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		s := attrToString(value)
		if s == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return err
		}
	}
	return nil
}

func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
