package avl

import "fmt"

// Check validates the structural invariants of the tree:
// elements are in search tree order and unique, cached heights are correct,
// sibling heights differ by at most one (unless the tree is configured as
// unbalanced), and the element count matches the number of nodes.
//
// Check is meant to be used in tests and diagnostics; it visits every node.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrInvariant, t.count, count)
	}
	return nil
}

// checkNode validates subtree n, whose elements have to lie strictly between
// lo and hi (nil meaning unbounded). It returns the number of nodes and the
// true height of the subtree.
func (t *Tree[T]) checkNode(n *node[T], lo, hi *T) (count int, h int, err error) {
	if n == nil {
		return 0, -1, nil
	}
	if lo != nil && t.cfg.Compare(n.element, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: element %v not greater than %v", ErrInvariant, n.element, *lo)
	}
	if hi != nil && t.cfg.Compare(n.element, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: element %v not less than %v", ErrInvariant, n.element, *hi)
	}
	lcount, lh, err := t.checkNode(n.left, lo, &n.element)
	if err != nil {
		return 0, 0, err
	}
	rcount, rh, err := t.checkNode(n.right, &n.element, hi)
	if err != nil {
		return 0, 0, err
	}
	h = max(lh, rh) + 1
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: node %v has cached height %d, true height is %d",
			ErrInvariant, n.element, n.height, h)
	}
	if !t.cfg.Unbalanced && (lh-rh > allowedImbalance || rh-lh > allowedImbalance) {
		return 0, 0, fmt.Errorf("%w: node %v is out of balance (left=%d, right=%d)",
			ErrInvariant, n.element, lh, rh)
	}
	return lcount + rcount + 1, h, nil
}
