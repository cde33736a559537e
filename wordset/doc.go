/*
Package wordset collects the distinct words of a text into an AVL tree.

Text is broken into words using a UAX #14 line-break segmenter. Segmentation
runs in a producer goroutine which broadcasts every word it finds; the tree is
built by a single consumer, so the (not thread-safe) tree is never shared.
Clients may watch the progress of loading by installing an observer.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package wordset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}
