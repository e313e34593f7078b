package lightgbm

import "strconv"

// NodeRef is a child reference decoded once from LightGBM's signed index:
// v >= 0 is internal node v, v < 0 is leaf ^v.
type NodeRef struct {
	index int
	leaf  bool
}

// RefOf decodes a raw left_child/right_child value.
func RefOf(v int) NodeRef {
	if v < 0 {
		return NodeRef{index: ^v, leaf: true}
	}
	return NodeRef{index: v}
}

// InternalRef addresses internal node i.
func InternalRef(i int) NodeRef { return NodeRef{index: i} }

// LeafRef addresses leaf i.
func LeafRef(i int) NodeRef { return NodeRef{index: i, leaf: true} }

// IsLeaf reports whether r addresses a leaf.
func (r NodeRef) IsLeaf() bool { return r.leaf }

// Index is the position in the internal or leaf arrays.
func (r NodeRef) Index() int { return r.index }

// Raw re-encodes r as LightGBM's signed index.
func (r NodeRef) Raw() int {
	if r.leaf {
		return ^r.index
	}
	return r.index
}

func (r NodeRef) String() string {
	if r.leaf {
		return "leaf " + strconv.Itoa(r.index)
	}
	return "internal " + strconv.Itoa(r.index)
}
