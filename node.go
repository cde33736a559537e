package avl

// node is a tree node. Children are owned exclusively by their parent;
// there are no back-links.
type node[T any] struct {
	element T
	left    *node[T]
	right   *node[T]
	height  int // 0 for a leaf
}

func newLeaf[T any](x T) *node[T] {
	return &node[T]{element: x}
}

// height of a subtree, where an absent subtree has height -1.
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// fixHeight recomputes the cached height of n from its children.
func (n *node[T]) fixHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is height(left) - height(right).
func (n *node[T]) balance() int {
	return height(n.left) - height(n.right)
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// leftmost returns the node holding the smallest element of a subtree.
func (n *node[T]) leftmost() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the node holding the largest element of a subtree.
func (n *node[T]) rightmost() *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
