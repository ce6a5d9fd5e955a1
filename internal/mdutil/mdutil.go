// Package mdutil provides small read-only queries over legacy markdown
// source files, answered from the parsed AST rather than ad-hoc regexes
// so that formatting inside headings and link texts is handled uniformly.
package mdutil

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Link is one markdown link in document order.
type Link struct {
	Text   string
	Target string
}

// ExtractTitle returns the text of the first level-1 heading, or "" when
// the document has none.
func ExtractTitle(source []byte) string {
	doc := md.Parser().Parse(text.NewReader(source))
	title := ""
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(nodeText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// ListLinks returns every link in the document in order. The migration
// walk uses this to infer child ordering when directory names do not
// sort numerically.
func ListLinks(source []byte) []Link {
	doc := md.Parser().Parse(text.NewReader(source))
	var out []Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if l, ok := n.(*ast.Link); ok {
			out = append(out, Link{
				Text:   strings.TrimSpace(nodeText(l, source)),
				Target: string(l.Destination),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	collectText(n, source, &b)
	return b.String()
}

func collectText(n ast.Node, source []byte, b *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		default:
			collectText(c, source, b)
		}
	}
}
