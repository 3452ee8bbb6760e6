// Package verify parses generated pages with goldmark and checks their
// structure. Example headings need a fenced block and API headings need a
// Property/Description/Type/Default table.
package verify

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const apiColumns = 4

var apiHeader = []string{"Property", "Description", "Type", "Default"}

// Report summarizes one page.
type Report struct {
	Title    string
	Examples int
	Tables   int
	Issues   []string
}

// OK reports whether the page had no issues.
func (r Report) OK() bool { return len(r.Issues) == 0 }

func newMarkdown() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.Table))
}

type section int

const (
	sectionNone section = iota
	sectionExamples
	sectionAPI
)

// Page checks one generated component page.
func Page(src []byte) Report {
	root := newMarkdown().Parser().Parse(text.NewReader(src))

	var (
		r         Report
		sec       = sectionNone
		sawImport bool
		open      string // H3 still waiting for its code block or table
	)

	closeOpen := func() {
		if open == "" {
			return
		}
		switch sec {
		case sectionExamples:
			r.Issues = append(r.Issues, fmt.Sprintf("example %q has no code block", open))
		case sectionAPI:
			r.Issues = append(r.Issues, fmt.Sprintf("API table %q has no table", open))
		}
		open = ""
	}

	first := true
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Heading:
			title := plainText(node, src)
			switch node.Level {
			case 1:
				if !first {
					r.Issues = append(r.Issues, fmt.Sprintf("unexpected H1 %q", title))
				} else {
					r.Title = title
				}
			case 2:
				closeOpen()
				switch title {
				case "Examples":
					sec = sectionExamples
				case "API":
					sec = sectionAPI
				default:
					sec = sectionNone
				}
			case 3:
				closeOpen()
				if sec != sectionNone {
					open = title
				}
			}
		case *gmast.Paragraph:
			if strings.HasPrefix(plainText(node, src), "Import:") {
				sawImport = true
			}
		case *gmast.FencedCodeBlock:
			if sec == sectionExamples && open != "" {
				r.Examples++
				open = ""
			}
		case *extast.Table:
			if sec != sectionAPI || open == "" {
				break
			}
			if cols := len(node.Alignments); cols != apiColumns {
				r.Issues = append(r.Issues, fmt.Sprintf("API table %q has %d columns, want %d", open, cols, apiColumns))
			} else if got := headerCells(node, src); !slices.Equal(got, apiHeader) {
				r.Issues = append(r.Issues, fmt.Sprintf("API table %q has header %v", open, got))
			}
			r.Tables++
			open = ""
		}
		if first {
			if h, ok := n.(*gmast.Heading); !ok || h.Level != 1 {
				r.Issues = append(r.Issues, "page does not start with an H1 heading")
			}
			first = false
		}
	}
	closeOpen()

	if first {
		r.Issues = append(r.Issues, "page is empty")
	}
	if !sawImport {
		r.Issues = append(r.Issues, "missing Import line")
	}
	return r
}

func headerCells(t *extast.Table, src []byte) []string {
	var cells []string
	for n := t.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*extast.TableHeader)
		if !ok {
			continue
		}
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, plainText(c, src))
		}
	}
	return cells
}

// plainText concatenates the text below n, dropping inline markup.
func plainText(n gmast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
