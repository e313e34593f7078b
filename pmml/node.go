package pmml

// Node is one decoded tree node. Nodes are built bottom-up and must not be
// modified once constructed; an internal node exclusively owns its two
// children.
type Node struct {
	// ID is the node's original array index (internal nodes) or its raw
	// negative child reference (leaves).
	ID          string
	Predicate   Predicate
	Score       string
	RecordCount float64
	Children    []*Node
}

// NewLeaf builds a leaf.
func NewLeaf(id string, predicate Predicate, score string, recordCount float64) *Node {
	return &Node{
		ID:          id,
		Predicate:   predicate,
		Score:       score,
		RecordCount: recordCount,
	}
}

// NewInternal builds an internal node from two finished children.
// Internal nodes carry no score.
func NewInternal(id string, predicate Predicate, recordCount float64, left, right *Node) *Node {
	return &Node{
		ID:          id,
		Predicate:   predicate,
		RecordCount: recordCount,
		Children:    []*Node{left, right},
	}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Left returns the first child, or nil for a leaf.
func (n *Node) Left() *Node {
	if n.IsLeaf() {
		return nil
	}
	return n.Children[0]
}

// Right returns the second child, or nil for a leaf.
func (n *Node) Right() *Node {
	if len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}

// Walk visits n and its descendants in pre-order, left before right, without
// recursion. Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.node, top.depth) {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: top.node.Children[i], depth: top.depth + 1})
		}
	}
}

// Stats summarizes a decoded tree.
type Stats struct {
	Internal int
	Leaves   int
	Depth    int
}

// Stats counts nodes and measures depth (a lone root has depth 0).
func (n *Node) Stats() Stats {
	var s Stats
	n.Walk(func(node *Node, depth int) bool {
		if node.IsLeaf() {
			s.Leaves++
		} else {
			s.Internal++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		return true
	})
	return s
}

// Leaves returns the leaves in left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}
