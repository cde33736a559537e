package avl

// Insert puts x into the tree. If an element comparing equal to x is already
// present, the tree is left unchanged.
//
// Insert reports whether x has been added.
func (t *Tree[T]) Insert(x T) bool {
	assert(t != nil, "Insert called for nil tree")
	assert(t.cfg.Compare != nil, "Insert called for tree without compare function, use New")
	var added bool
	t.root, added = t.insert(x, t.root)
	if added {
		t.count++
	}
	return added
}

// insert descends to the position of x and returns the (possibly new) root
// of subtree n, which the caller has to re-link.
func (t *Tree[T]) insert(x T, n *node[T]) (*node[T], bool) {
	if n == nil {
		return newLeaf(x), true
	}
	var added bool
	switch c := t.cfg.Compare(x, n.element); {
	case c < 0:
		n.left, added = t.insert(x, n.left)
	case c > 0:
		n.right, added = t.insert(x, n.right)
	default: // already present
		return n, false
	}
	return t.rebalance(n), added
}
