package avl

// allowedImbalance is the maximum height difference of sibling subtrees.
const allowedImbalance = 1

// rebalance restores the balance of subtree n after one of its children has
// changed. Both children are expected to be balanced already. rebalance
// recomputes the height of the subtree and returns its (possibly new) root.
//
// If both grandchildren on the heavy side have equal heights, a single
// rotation is used.
func (t *Tree[T]) rebalance(n *node[T]) *node[T] {
	assert(n != nil, "rebalance called with nil node")
	if t.cfg.Unbalanced {
		n.fixHeight()
		return n
	}
	if height(n.left)-height(n.right) > allowedImbalance {
		if height(n.left.left) >= height(n.left.right) {
			n = t.rotateWithLeftChild(n)
		} else {
			n = t.doubleWithLeftChild(n)
		}
	} else if height(n.right)-height(n.left) > allowedImbalance {
		if height(n.right.right) >= height(n.right.left) {
			n = t.rotateWithRightChild(n)
		} else {
			n = t.doubleWithRightChild(n)
		}
	}
	n.fixHeight()
	return n
}

// rotateWithLeftChild promotes the left child k1 of k2 to subtree root
// (single right rotation).
func (t *Tree[T]) rotateWithLeftChild(k2 *node[T]) *node[T] {
	k1 := k2.left
	tracer().Debugf("%s: rotate %v with left child %v", t.cfg.Name, k2.element, k1.element)
	k2.left = k1.right
	k1.right = k2
	k2.fixHeight()
	k1.height = max(height(k1.left), k2.height) + 1
	return k1
}

// rotateWithRightChild promotes the right child k2 of k1 to subtree root
// (single left rotation).
func (t *Tree[T]) rotateWithRightChild(k1 *node[T]) *node[T] {
	k2 := k1.right
	tracer().Debugf("%s: rotate %v with right child %v", t.cfg.Name, k1.element, k2.element)
	k1.right = k2.left
	k2.left = k1
	k1.fixHeight()
	k2.height = max(height(k2.right), k1.height) + 1
	return k2
}

// doubleWithLeftChild handles a left-heavy node whose left child is
// right-heavy: rotate the left child with its right child, then rotate n
// with its new left child.
func (t *Tree[T]) doubleWithLeftChild(n *node[T]) *node[T] {
	n.left = t.rotateWithRightChild(n.left)
	return t.rotateWithLeftChild(n)
}

// doubleWithRightChild is the mirror image of doubleWithLeftChild.
func (t *Tree[T]) doubleWithRightChild(n *node[T]) *node[T] {
	n.right = t.rotateWithLeftChild(n.right)
	return t.rotateWithRightChild(n)
}
