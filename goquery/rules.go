package goquery

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Rule is a pure rewrite step applied to a single node by CleanText.
// It returns (true, replacement) when it consumes the node: the node is
// replaced by the returned sequence, or deleted when the sequence is
// nil. It returns (false, nil) when the node passes through unchanged
// and the next rule gets a look.
type Rule func(n *html.Node) (consumed bool, replacement []*html.Node)

// StripSpan unwraps a plain styling span, replacing it with its own
// children.
func StripSpan(n *html.Node) (bool, []*html.Node) {
	if isElement(n, "span") {
		return true, children(n)
	}
	return false, nil
}

// StripItalic unwraps an italic or emphasis wrapper, replacing it with
// its own children.
func StripItalic(n *html.Node) (bool, []*html.Node) {
	if isElement(n, "i") || isElement(n, "em") {
		return true, children(n)
	}
	return false, nil
}

// DeleteAnchor deletes any hyperlink together with its content.
func DeleteAnchor(n *html.Node) (bool, []*html.Node) {
	if isElement(n, "a") {
		return true, nil
	}
	return false, nil
}

// DeleteAnchorMatching returns a rule that deletes a hyperlink only if
// its normalized text content matches pattern at the start. Non-matching
// anchors pass through unchanged.
func DeleteAnchorMatching(pattern *regexp.Regexp) Rule {
	return func(n *html.Node) (bool, []*html.Node) {
		if !isElement(n, "a") {
			return false, nil
		}
		text := Normalize(render(children(n)))
		if loc := pattern.FindStringIndex(text); loc != nil && loc[0] == 0 {
			return true, nil
		}
		return false, nil
	}
}

// DeleteRuleRef deletes a spelling-rule cross-reference, marked by the
// data-duden-ref-type="rule" attribute.
func DeleteRuleRef(n *html.Node) (bool, []*html.Node) {
	if n.Type == html.ElementNode && attrContains(n, "data-duden-ref-type", "rule") {
		return true, nil
	}
	return false, nil
}

// DeleteIcon deletes decorative icon elements carrying the tuple__icon
// class.
func DeleteIcon(n *html.Node) (bool, []*html.Node) {
	if n.Type == html.ElementNode && attrContains(n, "class", "tuple__icon") {
		return true, nil
	}
	return false, nil
}

// senseNumber matches the trailing sense-number token of a lexeme
// cross-reference, e.g. "(2)" or "(2a)".
var senseNumber = regexp.MustCompile(`^\([0-9]+[a-z]*\)$`)

// StripLexemeRef unwraps a lexeme cross-reference, marked by the
// data-duden-ref-type="lexeme" attribute. If the last whitespace-separated
// token of its text is a parenthesized sense number, the token is dropped
// and the rest kept as a single text leaf; otherwise the element is
// replaced with its own children unchanged.
func StripLexemeRef(n *html.Node) (bool, []*html.Node) {
	if n.Type != html.ElementNode || !attrContains(n, "data-duden-ref-type", "lexeme") {
		return false, nil
	}

	parts := strings.Fields(Normalize(render(children(n))))
	if len(parts) > 0 && senseNumber.MatchString(parts[len(parts)-1]) {
		return true, []*html.Node{textNode(strings.Join(parts[:len(parts)-1], " "))}
	}
	return true, children(n)
}
