package avl

import "iter"

// All returns an iterator over all elements in ascending order.
//
// The iterator may be used multiple times; every use starts a new traversal
// of the current state of the tree. The tree must not be modified while an
// iteration is in progress.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		forward(t.root, yield)
	}
}

// Backward returns an iterator over all elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		backward(t.root, yield)
	}
}

// ForEach walks the elements in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(x T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forward(t.root, fn)
}

// Values returns the elements of the tree as an ascending slice.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	t.ForEach(func(x T) bool {
		values = append(values, x)
		return true
	})
	return values
}

func forward[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return forward(n.left, yield) && yield(n.element) && forward(n.right, yield)
}

func backward[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return backward(n.right, yield) && yield(n.element) && backward(n.left, yield)
}
