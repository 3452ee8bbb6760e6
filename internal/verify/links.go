package verify

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is one inline link in the index manifest.
type Link struct {
	Text        string
	Destination string
}

// ManifestLinks returns the inline links of the llms.txt manifest in
// document order.
func ManifestLinks(src []byte) []Link {
	root := newMarkdown().Parser().Parse(text.NewReader(src))

	var links []Link
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if l, ok := n.(*ast.Link); ok {
			links = append(links, Link{Text: plainText(l, src), Destination: string(l.Destination)})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}
