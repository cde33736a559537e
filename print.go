package avl

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig controls the console output of Print.
type PrintConfig struct {
	Colors        bool           // highlight nodes with non-zero balance factor
	MaxLabelWidth int            // maximum display width of element labels, 0 = unlimited
	Context       *uax11.Context // for measuring display width; nil = Latin context
}

// PrintConfigFromTerminal is a simple helper for creating a print config.
// It checks whether stdout is a terminal, and if so enables colors and limits
// labels to a fraction of the terminal's width.
func PrintConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil && w > 40 {
			config.MaxLabelWidth = w / 3
		} else {
			config.MaxLabelWidth = 20
		}
	}
	tracer().P("print", "console").Infof("colors=%v, label width=%d", config.Colors, config.MaxLabelWidth)
	return config
}

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

var setupGraphemes sync.Once

type printer[T any] struct {
	w      io.Writer
	config *PrintConfig
	heavy  *color.Color
	err    error
}

// Print displays an ASCII graphic representation of the tree, turned on its
// side: the root is in the leftmost column, right subtrees are printed above
// and left subtrees below their parent. Every node is shown with its height
// and balance factor.
//
// If config is nil, PrintConfigFromTerminal is used.
// Print returns the number of levels of the tree.
func (t *Tree[T]) Print(w io.Writer, config *PrintConfig) int {
	var c PrintConfig
	if config == nil {
		c = *PrintConfigFromTerminal()
	} else {
		c = *config
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if t.IsEmpty() {
		io.WriteString(w, "<empty>\n")
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer[T]{
		w:      w,
		config: &c,
		heavy:  color.New(color.FgRed, color.Bold),
	}
	if c.Colors {
		p.heavy.EnableColor()
	} else {
		p.heavy.DisableColor()
	}
	depth := p.print(t.root, "", rootBranch)
	if p.err != nil {
		tracer().Errorf("print tree: %s", p.err.Error())
	}
	return depth
}

// print returns the number of levels of subtree n.
func (p *printer[T]) print(n *node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd, ld := 0, 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = p.print(n.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		p.write(fmt.Sprintf("%s|------+ ", prefix))
	case leftBranch:
		p.write(fmt.Sprintf("%s\\------+ ", prefix))
	case rightBranch:
		p.write(fmt.Sprintf("%s/------+ ", prefix))
	}
	label := p.label(fmt.Sprintf("%v", n.element))
	info := fmt.Sprintf(" h=%d b=%+d\n", n.height, n.balance())
	if n.balance() != 0 {
		if _, err := p.heavy.Fprint(p.w, label); err != nil && p.err == nil {
			p.err = err
		}
		p.write(info)
	} else {
		p.write(label + info)
	}
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = p.print(n.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}

func (p *printer[T]) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// label shortens s to the configured maximum display width, cutting at
// grapheme boundaries.
func (p *printer[T]) label(s string) string {
	limit := p.config.MaxLabelWidth
	if limit <= 0 {
		return s
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, p.config.Context) <= limit {
		return s
	}
	out, width := "", 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), p.config.Context)
		if width+gw > limit-1 { // reserve one en for the ellipsis
			break
		}
		out += g
		width += gw
	}
	return out + "…"
}
