package avl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	tree := newIntTree(t, false, 10, 30, 65, 50, 90, 40)
	var buf bytes.Buffer
	if err := Tree2Dot(tree, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, `strict digraph "avl" {`) || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a DOT graph:\n%s", dot)
	}
	if n := strings.Count(dot, "label=\""); n != 7 { // 6 elements + 1 missing child of 65
		t.Errorf("expected 7 labeled nodes, found %d", n)
	}
	if n := strings.Count(dot, "->"); n != 6 {
		t.Errorf("expected 6 edges, found %d", n)
	}
	if !strings.Contains(dot, `label="50\nh=2"`) {
		t.Errorf("expected root 50 with height 2")
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Tree2Dot(NewOrdered[int](), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Fatalf("empty tree should not have edges:\n%s", buf.String())
	}
}

// flakyWriter fails exactly once, on call number failAt.
type flakyWriter struct {
	calls, failAt int
	buf           bytes.Buffer
}

func (fw *flakyWriter) Write(p []byte) (int, error) {
	fw.calls++
	if fw.calls == fw.failAt {
		return 0, errors.New("write failed")
	}
	return fw.buf.Write(p)
}

func TestTree2DotReportsFirstWriteError(t *testing.T) {
	tree := newIntTree(t, false, 2, 1, 3)
	for failAt := 1; failAt <= 5; failAt++ {
		fw := &flakyWriter{failAt: failAt}
		if err := Tree2Dot(tree, fw); err == nil {
			t.Errorf("expected error when write #%d fails", failAt)
		}
		if fw.calls != failAt {
			t.Errorf("expected no writes after failing write #%d, got %d writes", failAt, fw.calls)
		}
	}
}
