package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// children returns the child nodes of n with layout-only text nodes
// (bare newlines and indentation) removed. The source tree is never
// mutated; the returned slice is a fresh sequence of borrowed pointers.
func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isLayoutText(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// isLayoutText reports whether n is a text node that only exists because
// of source formatting: whitespace containing a newline. Plain spaces
// between inline elements are kept because they separate words.
func isLayoutText(n *html.Node) bool {
	if n.Type != html.TextNode {
		return false
	}
	return strings.TrimSpace(n.Data) == "" && strings.Contains(n.Data, "\n")
}

// textNode synthesizes a standalone text leaf.
func textNode(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// render converts a node sequence to text: text leaves contribute their
// string, element nodes their raw markup. Unknown structure that no rule
// consumed stays visible in the output rather than being silently lost.
func render(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			continue
		}
		// Render ignores write errors into a strings.Builder.
		_ = html.Render(&b, n)
	}
	return b.String()
}

// attrContains reports whether the node has an attribute with the given
// key whose space-separated values include val.
func attrContains(n *html.Node, key, val string) bool {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		for _, v := range strings.Fields(a.Val) {
			if v == val {
				return true
			}
		}
	}
	return false
}

// isElement reports whether n is an element with the given tag name.
func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}
