// Package markdown turns Markdown documents into plain text suitable for
// translation. Formatting, link targets and raw HTML are dropped; paragraph
// and list structure is kept as line breaks.
package markdown

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

var blankLines = regexp.MustCompile(`\n{3,}`)

func parse(md []byte) ast.Node {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	return p.Parse(md)
}

// ToPlainText renders md as plain text.
func ToPlainText(md []byte) string {
	var b strings.Builder

	ast.WalkFunc(parse(md), func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				b.Write(n.Literal)
				b.WriteString("\n\n")
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				b.WriteString("\n")
			}
		case *ast.HTMLSpan, *ast.HTMLBlock:
			return ast.SkipChildren
		case *ast.Paragraph, *ast.Heading, *ast.BlockQuote:
			if !entering {
				b.WriteString("\n\n")
			}
		case *ast.ListItem:
			if !entering {
				b.WriteString("\n")
			}
		}
		return ast.GoToNext
	})

	return strings.TrimSpace(blankLines.ReplaceAllString(b.String(), "\n\n"))
}
