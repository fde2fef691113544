package dom

import "strings"

// Document is the root of a node tree.
type Document struct {
	Root *Node
}

// NewDocument creates a document. A single root node is used as is;
// several are wrapped in a fragment.
func NewDocument(roots ...*Node) *Document {
	if len(roots) == 1 {
		return &Document{Root: roots[0]}
	}
	return &Document{Root: Fragment(roots...)}
}

// GetElementByID returns the first element in document order whose id
// attribute equals id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	if d == nil {
		return nil
	}
	return d.Root.GetElementByID(id)
}

// GetElementByID searches n and its descendants.
func (n *Node) GetElementByID(id string) *Node {
	if n == nil || id == "" {
		return nil
	}
	var found *Node
	n.walk(func(c *Node) bool {
		if c.Kind == KindElement && c.ID() == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns the descendants of n (not n itself) with the
// given tag, in document order. The tag compares case-insensitively and
// "*" matches every element.
func (n *Node) GetElementsByTagName(tag string) []*Node {
	var out []*Node
	if n == nil {
		return out
	}
	for _, child := range n.Children {
		child.walk(func(c *Node) bool {
			if c.Kind == KindElement && (tag == "*" || strings.EqualFold(c.Tag, tag)) {
				out = append(out, c)
			}
			return true
		})
	}
	return out
}

// walk visits n and its descendants depth-first, pre-order, until fn
// returns false. It returns false if the walk was stopped.
func (n *Node) walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
