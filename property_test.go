package avl

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzTreeOperations -fuzztime=10s

// heightBound is the worst case height of an AVL tree with n elements.
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]struct{}) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	want := make([]int, 0, len(model))
	for v := range model {
		want = append(want, v)
	}
	slices.Sort(want)
	got := tree.Values()
	if !slices.Equal(got, want) {
		t.Fatalf("model mismatch: got=%v want=%v", got, want)
	}
	if h := float64(tree.Height()); tree.Len() > 0 && h > heightBound(tree.Len()) {
		t.Fatalf("height %v exceeds AVL bound %.2f for %d elements", h, heightBound(tree.Len()), tree.Len())
	}
}

func runRandomSequence(t *testing.T, seed int64, steps int, keyRange int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree := NewOrdered[int]()
	model := make(map[int]struct{})
	for step := range steps {
		x := r.Intn(keyRange)
		_, present := model[x]
		if r.Intn(3) == 0 {
			if removed := tree.Remove(x); removed != present {
				t.Fatalf("seed=%d step=%d: Remove(%d) = %v, expected %v", seed, step, x, removed, present)
			}
			delete(model, x)
		} else {
			if added := tree.Insert(x); added == present {
				t.Fatalf("seed=%d step=%d: Insert(%d) = %v, expected %v", seed, step, x, added, !present)
			}
			model[x] = struct{}{}
		}
		if step%97 == 0 {
			assertTreeMatchesModel(t, tree, model)
		}
	}
	assertTreeMatchesModel(t, tree, model)
	for x := range keyRange {
		_, present := model[x]
		if tree.Contains(x) != present {
			t.Fatalf("seed=%d: Contains(%d) = %v, expected %v", seed, x, !present, present)
		}
	}
}

func TestRandomizedProperty(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234, 98765} {
		runRandomSequence(t, seed, 3000, 1000)
	}
}

func TestMembershipRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	values := r.Perm(2500)
	tree := NewOrdered[int]()
	for _, v := range values {
		if !tree.Insert(v * 2) {
			t.Fatalf("insert of new element %d reported no change", v*2)
		}
	}
	for _, v := range values {
		if !tree.Contains(v * 2) {
			t.Fatalf("inserted element %d not contained", v*2)
		}
		if tree.Contains(v*2 + 1) {
			t.Fatalf("element %d contained but never inserted", v*2+1)
		}
	}
	if float64(tree.Height()) > heightBound(tree.Len()) {
		t.Fatalf("height %d exceeds AVL bound for %d elements", tree.Height(), tree.Len())
	}
}

func TestRemoveRemovesExactlyOne(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	values := r.Perm(500)
	tree := NewOrdered[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	for i, v := range values {
		before := tree.Values()
		if !tree.Remove(v) {
			t.Fatalf("remove of %d reported no change", v)
		}
		if tree.Contains(v) {
			t.Fatalf("%d still contained after removal", v)
		}
		want := slices.DeleteFunc(before, func(x int) bool { return x == v })
		if got := tree.Values(); !slices.Equal(got, want) {
			t.Fatalf("remove of %d changed more than one element", v)
		}
		if i%50 == 0 {
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree, %d elements left", tree.Len())
	}
}

func TestSortedInsertsStayLogarithmic(t *testing.T) {
	tree := NewOrdered[int]()
	for i := range 4096 {
		tree.Insert(i)
	}
	if tree.Height() != 12 {
		t.Errorf("expected height 12 for 4096 ascending inserts, got %d", tree.Height())
	}
	for i := 4095; i >= 0; i -= 2 {
		tree.Remove(i)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if float64(tree.Height()) > heightBound(tree.Len()) {
		t.Fatalf("height %d exceeds AVL bound for %d elements", tree.Height(), tree.Len())
	}
}

func FuzzTreeOperations(f *testing.F) {
	f.Add([]byte{10, 30, 65, 50, 90, 40})
	f.Add([]byte{20, 10, 42, 12, 15, 128 | 20})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 128 | 4, 128 | 2})
	f.Fuzz(func(t *testing.T, ops []byte) {
		tree := NewOrdered[byte]()
		model := make(map[byte]struct{})
		for _, op := range ops {
			x := op & 0x7f
			if op&0x80 != 0 {
				tree.Remove(x)
				delete(model, x)
			} else {
				tree.Insert(x)
				model[x] = struct{}{}
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("invariant check failed after op %#x: %v", op, err)
			}
		}
		if tree.Len() != len(model) {
			t.Fatalf("len mismatch: got=%d want=%d", tree.Len(), len(model))
		}
		prev := -1
		for x := range tree.All() {
			if int(x) <= prev {
				t.Fatalf("traversal not strictly ascending at %d", x)
			}
			prev = int(x)
		}
	})
}
