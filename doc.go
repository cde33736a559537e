/*
Package avl provides an ordered, height-balanced binary search tree (AVL tree).

Trees

An AVL tree stores a set of distinct elements of any totally ordered type and
keeps itself balanced: at every node the heights of the two subtrees differ by
at most one. This bounds the height of a tree holding n elements by about
1.44·log₂(n+2), independent of the order of insertions and deletions.

	Operation     |   AVL tree      |  plain search tree (worst case)
	--------------+-----------------+-------------------------------
	Contains      |   O(log n)      |   O(n)
	Insert        |   O(log n)      |   O(n)
	Remove        |   O(log n)      |   O(n)
	Min / Max     |   O(log n)      |   O(n)
	Iterate       |   O(n)          |   O(n)

The ordering is supplied by clients as a three-way comparison function, which
is the only way the tree looks at elements:

	tree, err := avl.New(avl.Config[string]{Compare: strings.Compare})
	...
	tree.Insert("hello")
	for s := range tree.All() {
	    fmt.Println(s)
	}

For element types satisfying cmp.Ordered, NewOrdered creates a tree without
further configuration.

Setting Config.Unbalanced turns off rotations, yielding a plain binary search
tree. This is mostly useful for comparisons and tests.

Trees are not safe for concurrent use. Clients have to serialize access, e.g.,
by protecting a tree with a mutex.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avl'
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
