package avl

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their element and height;
// absent children of inner nodes are drawn as small empty circles.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) error {
	name := DefaultName
	if tree != nil {
		name = tree.cfg.Name
	}
	dw := &dotWriter{w: w}
	dw.write(fmt.Sprintf("strict digraph %q {\n", name))
	dw.write("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	if !tree.IsEmpty() {
		preorder(tree.root, func(n *node[T]) {
			ID := ids.alloc(n)
			label := fmt.Sprintf("%v\\nh=%d", n.element, n.height)
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
			if n.isLeaf() {
				return
			}
			for i, child := range []*node[T]{n.left, n.right} {
				if child == nil {
					nilid := -ID*2 - i // unique per missing slot
					nodelist += fmt.Sprintf("\t\"%d\" %s;\n", nilid, emptyNode())
					edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				}
			}
		})
	}
	dw.write(nodelist)
	dw.write(edgelist)
	dw.write("}\n")
	if dw.err != nil {
		tracer().Errorf("tree DOT: %s", dw.err.Error())
	}
	return dw.err
}

// dotWriter keeps the first write error and skips all writes after it.
type dotWriter struct {
	w   io.Writer
	err error
}

func (dw *dotWriter) write(s string) {
	if dw.err != nil {
		return
	}
	_, dw.err = io.WriteString(dw.w, s)
}

func preorder[T any](n *node[T], visit func(*node[T])) {
	if n == nil {
		return
	}
	visit(n)
	preorder(n.left, visit)
	preorder(n.right, visit)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T any](n *node[T]) string {
	s := ",style=filled"
	if n.isLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if b := n.balance(); b != 0 {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(abs(b), len(hexcolors)-1)])
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

// fill colors by absolute balance factor; beyond 1 only occurs for unbalanced trees
var hexcolors = [...]string{"#a3d7e4", "#FFCCAA", "#FFAA66", "#FF8822", "#ff6600"}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
