// Package uir defines the universal intermediate representation: the typed
// tree every supported source language is normalized into and every target
// language is generated from, together with the metadata, annotation and
// error contracts shared by the front ends, the library abstraction layer
// and the generators.
package uir

// Node is a single vertex of the universal intermediate representation.
//
// IDs are deterministic functions of the node's grammar kind, start position
// and source text (see NodeID), so parsing the same input twice yields
// byte-identical trees. Name is empty for unnamed nodes. Mutation is confined
// to tree construction and the library abstraction layer's annotation and
// transformation passes; everything else treats nodes as read-only.
type Node struct {
	ID       string          `json:"id"`
	Type     NodeType        `json:"node_type"`
	Name     string          `json:"name,omitempty"`
	Children []*Node         `json:"children,omitempty"`
	Metadata Metadata        `json:"metadata"`
	Loc      *SourceLocation `json:"source_location,omitempty"`
}

// New creates a node with the given identity and type and an initialized
// metadata block for lang.
func New(id string, nodeType NodeType, lang Language) *Node {
	return &Node{
		ID:       id,
		Type:     nodeType,
		Metadata: Metadata{SourceLanguage: lang},
	}
}

// WithName sets the node name and returns the node for chaining during
// construction.
func (n *Node) WithName(name string) *Node {
	n.Name = name

	return n
}

// WithLocation attaches a source location and returns the node for chaining
// during construction.
func (n *Node) WithLocation(loc *SourceLocation) *Node {
	n.Loc = loc

	return n
}

// AddChild appends a child node and returns the receiver for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)

	return n
}

// traversalStackCapacity sizes the initial visit stack; trees deeper than
// this still work, the stack just grows.
const traversalStackCapacity = 64

// VisitPreOrder visits the tree in pre-order (node, then children
// left-to-right) without recursion.
func (n *Node) VisitPreOrder(fn func(*Node)) {
	if n == nil {
		return
	}

	stack := make([]*Node, 0, traversalStackCapacity)
	stack = append(stack, n)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(current)

		for idx := len(current.Children) - 1; idx >= 0; idx-- {
			if current.Children[idx] != nil {
				stack = append(stack, current.Children[idx])
			}
		}
	}
}

// Find returns all nodes (including n) for which predicate(node) is true,
// in pre-order. Returns nil if n is nil.
func (n *Node) Find(predicate func(*Node) bool) []*Node {
	var matches []*Node

	n.VisitPreOrder(func(node *Node) {
		if predicate(node) {
			matches = append(matches, node)
		}
	})

	return matches
}

// Count returns the number of nodes in the tree including n itself.
func (n *Node) Count() int {
	count := 0

	n.VisitPreOrder(func(*Node) { count++ })

	return count
}

// Clone returns a deep copy of the tree. The transformer works on clones so
// the caller's tree survives a failed pass untouched.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	clone := &Node{
		ID:       n.ID,
		Type:     n.Type,
		Name:     n.Name,
		Metadata: n.Metadata.clone(),
	}

	if n.Loc != nil {
		loc := *n.Loc
		clone.Loc = &loc
	}

	if len(n.Children) > 0 {
		clone.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			clone.Children = append(clone.Children, child.Clone())
		}
	}

	return clone
}
