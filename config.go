package avl

import "fmt"

// DefaultName is the label of a tree without a configured name.
const DefaultName = "avl"

// Config configures an AVL tree.
type Config[T any] struct {
	// Compare defines the total order of elements. It returns a negative value
	// if a < b, zero if a == b, and a positive value if a > b.
	// Compare is required.
	Compare func(a, b T) int
	// Unbalanced switches off rebalancing. The tree then degrades to a plain
	// binary search tree (heights are still tracked).
	Unbalanced bool
	// Name labels the tree in trace output and DOT graphs.
	Name string
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
