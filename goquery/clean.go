package goquery

import "golang.org/x/net/html"

// Label rules strip decoration from definition-list labels and other
// short fragments without touching hyperlink text.
var labelRules = []Rule{StripSpan, StripItalic, StripLexemeRef, DeleteRuleRef, DeleteIcon}

// CleanText rewrites a node sequence to a decoration-free string by
// applying rules to a fixed point.
//
// Each pass walks the current sequence once. For every node the rules
// are tried in order and the first rule that consumes the node
// determines its replacement; a node no rule consumes passes through.
// Passes repeat until one fires no rule at all. Termination is
// guaranteed because every firing either deletes a node or replaces it
// with its own children, so the tree only ever shrinks.
//
// The final sequence is rendered to text (see render) and normalized.
func CleanText(nodes []*html.Node, rules ...Rule) string {
	seq := nodes
	for {
		changed := false
		next := make([]*html.Node, 0, len(seq))
		for _, n := range seq {
			consumed := false
			for _, rule := range rules {
				ok, repl := rule(n)
				if !ok {
					continue
				}
				consumed = true
				changed = true
				next = append(next, repl...)
				break
			}
			if !consumed {
				next = append(next, n)
			}
		}
		seq = next
		if !changed {
			break
		}
	}
	return Normalize(render(seq))
}

// Clean is CleanText for a single node.
func Clean(n *html.Node, rules ...Rule) string {
	return CleanText([]*html.Node{n}, rules...)
}
