package avl

import "errors"

var (
	// ErrEmptyTree signals a query which needs at least one element, e.g. FindMin.
	ErrEmptyTree = errors.New("avl: tree is empty")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrInvariant is reported by Check for a violated structural invariant.
	ErrInvariant = errors.New("avl: invariant violated")
)
