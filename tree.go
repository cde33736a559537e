package avl

import (
	"cmp"
)

// Tree is an ordered set of elements, organized as a height-balanced binary
// search tree.
//
// A tree has to be created with New or NewOrdered. The zero value of a Tree
// is not usable, as it lacks a comparison function; a nil *Tree behaves like
// an empty tree for all queries.
type Tree[T any] struct {
	cfg   Config[T]
	root  *node[T]
	count int
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// NewOrdered creates an empty balanced tree for an ordered element type,
// using cmp.Compare as the element order.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	tree, err := New(Config[T]{Compare: cmp.Compare[T]})
	assert(err == nil, "NewOrdered: cannot create tree")
	return tree
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the height of the tree. A tree with a single element has
// height 0, the empty tree has height -1.
func (t *Tree[T]) Height() int {
	if t == nil {
		return -1
	}
	return height(t.root)
}

// Contains reports whether an element comparing equal to x is stored in the tree.
func (t *Tree[T]) Contains(x T) bool {
	if t.IsEmpty() {
		return false
	}
	return t.contains(x, t.root)
}

func (t *Tree[T]) contains(x T, n *node[T]) bool {
	if n == nil {
		return false
	}
	switch c := t.cfg.Compare(x, n.element); {
	case c < 0:
		return t.contains(x, n.left)
	case c > 0:
		return t.contains(x, n.right)
	default:
		return true
	}
}

// FindMin returns the smallest element of the tree.
// For an empty tree it returns the zero value of T and ErrEmptyTree.
func (t *Tree[T]) FindMin() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, ErrEmptyTree
	}
	return t.root.leftmost().element, nil
}

// FindMax returns the largest element of the tree.
// For an empty tree it returns the zero value of T and ErrEmptyTree.
func (t *Tree[T]) FindMax() (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, ErrEmptyTree
	}
	return t.root.rightmost().element, nil
}

// MakeEmpty drops all elements of the tree at once.
func (t *Tree[T]) MakeEmpty() {
	if t == nil {
		return
	}
	tracer().Debugf("%s: make empty, dropping %d elements", t.cfg.Name, t.count)
	t.root = nil
	t.count = 0
}
