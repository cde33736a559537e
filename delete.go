package avl

// Remove deletes the element comparing equal to x from the tree. If no such
// element is present, the tree is left unchanged.
//
// Remove reports whether an element has been removed.
func (t *Tree[T]) Remove(x T) bool {
	if t.IsEmpty() {
		return false
	}
	var removed bool
	t.root, removed = t.remove(x, t.root)
	if removed {
		t.count--
	}
	return removed
}

// remove deletes x from subtree n and returns the (possibly new) root of the
// subtree, which the caller has to re-link.
//
// A node with two children is not unlinked. Instead it takes over the element
// of its successor (the minimum of its right subtree), which is then removed
// from the right subtree. The successor has no left child, so this second
// removal always ends in the zero/one child case.
func (t *Tree[T]) remove(x T, n *node[T]) (*node[T], bool) {
	if n == nil { // not in tree
		return nil, false
	}
	var removed bool
	switch c := t.cfg.Compare(x, n.element); {
	case c < 0:
		n.left, removed = t.remove(x, n.left)
	case c > 0:
		n.right, removed = t.remove(x, n.right)
	default:
		if n.left != nil && n.right != nil {
			n.element = n.right.leftmost().element
			n.right, removed = t.remove(n.element, n.right)
			assert(removed, "remove: successor not found in right subtree")
		} else {
			removed = true
			if n.left != nil {
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	if n == nil {
		return nil, removed
	}
	return t.rebalance(n), removed
}
