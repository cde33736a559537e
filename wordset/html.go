package wordset

import (
	"io"
	"strings"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML returns the set of words in the textual content of an HTML
// fragment. Markup is dropped, as are the contents of script and style
// elements.
func FromHTML(input io.Reader, opts *Options) (*avl.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return FromReader(strings.NewReader(b.String()), opts)
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	} else if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ') // text nodes of adjacent elements must not run together
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
