package avl

import (
	"slices"
	"testing"
)

func TestAllIsAscendingAndRestartable(t *testing.T) {
	tree := newIntTree(t, false, 50, 20, 80, 10, 30, 70, 90)
	for range 2 {
		var got []int
		for x := range tree.All() {
			got = append(got, x)
		}
		if !slices.Equal(got, []int{10, 20, 30, 50, 70, 80, 90}) {
			t.Fatalf("unexpected traversal %v", got)
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := newIntTree(t, false, 5, 3, 8, 1, 4, 7, 9)
	var got []int
	for x := range tree.All() {
		if x > 4 {
			break
		}
		got = append(got, x)
	}
	if !slices.Equal(got, []int{1, 3, 4}) {
		t.Fatalf("unexpected prefix %v", got)
	}
}

func TestBackward(t *testing.T) {
	tree := newIntTree(t, false, 5, 3, 8, 1, 4, 7, 9)
	got := slices.Collect(tree.Backward())
	if !slices.Equal(got, []int{9, 8, 7, 5, 4, 3, 1}) {
		t.Fatalf("unexpected backward traversal %v", got)
	}
}

func TestForEachStopsEarly(t *testing.T) {
	tree := newIntTree(t, false, 5, 3, 8, 1, 4, 7, 9)
	n := 0
	tree.ForEach(func(x int) bool {
		n++
		return x < 5
	})
	if n != 4 {
		t.Fatalf("expected ForEach to visit 4 elements, visited %d", n)
	}
}

func TestIterateEmptyTree(t *testing.T) {
	tree := NewOrdered[int]()
	for x := range tree.All() {
		t.Fatalf("unexpected element %d in empty tree", x)
	}
	if v := tree.Values(); len(v) != 0 {
		t.Fatalf("unexpected values %v", v)
	}
}
