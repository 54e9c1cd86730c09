package latex

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// urlEscaper rewrites characters that break \href and \url arguments.
var urlEscaper = strings.NewReplacer(
	`%`, `\%`,
	`#`, `\#`,
)

// FromMarkdown converts a Markdown document to LaTeX suitable for embedding
// in a letter body. Headings map to starred sectioning commands, lists to
// itemize/enumerate, emphasis to \textit/\textbf, links to \href, and code
// to \texttt or verbatim environments. Raw HTML is dropped.
func FromMarkdown(source []byte) (string, error) {
	// Linkify turns bare URLs into autolinks, matching how letter bodies
	// are usually written.
	md := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	doc := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	if err := renderBlocks(&b, source, doc, ""); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(b.String()) + "\n", nil
}

// renderBlocks renders the block-level children of n, separated by blank
// lines. indent is prepended to every emitted line for nested lists.
func renderBlocks(b *strings.Builder, src []byte, n ast.Node, indent string) error {
	first := true
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if !first {
			b.WriteString("\n\n")
		}
		first = false
		if err := renderBlock(b, src, c, indent); err != nil {
			return err
		}
	}
	return nil
}

func renderBlock(b *strings.Builder, src []byte, n ast.Node, indent string) error {
	switch node := n.(type) {
	case *ast.Heading:
		b.WriteString(indent + headingCommand(node.Level) + "{")
		renderInlines(b, src, node)
		b.WriteString("}")

	case *ast.Paragraph, *ast.TextBlock:
		b.WriteString(indent)
		renderInlines(b, src, n)

	case *ast.List:
		env := "itemize"
		if node.IsOrdered() {
			env = "enumerate"
		}
		b.WriteString(indent + `\begin{` + env + "}\n")
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			b.WriteString(indent + `\item `)
			if err := renderListItem(b, src, item, indent); err != nil {
				return err
			}
			b.WriteString("\n")
		}
		b.WriteString(indent + `\end{` + env + "}")

	case *ast.Blockquote:
		b.WriteString(indent + "\\begin{quote}\n")
		if err := renderBlocks(b, src, node, indent); err != nil {
			return err
		}
		b.WriteString("\n" + indent + `\end{quote}`)

	case *ast.FencedCodeBlock:
		renderVerbatim(b, src, node, indent)

	case *ast.CodeBlock:
		renderVerbatim(b, src, node, indent)

	case *ast.ThematicBreak:
		b.WriteString(indent + `\noindent\hrulefill`)

	case *ast.HTMLBlock:
		// Raw HTML has no LaTeX equivalent.

	default:
		// Unknown blocks render their inline content so text is never lost.
		b.WriteString(indent)
		renderInlines(b, src, n)
	}
	return nil
}

// renderListItem renders the blocks of a list item. The first paragraph
// continues the \item line; subsequent blocks (including nested lists) start
// on fresh, indented lines.
func renderListItem(b *strings.Builder, src []byte, item ast.Node, indent string) error {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if first {
			switch c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				renderInlines(b, src, c)
				first = false
				continue
			}
		}
		b.WriteString("\n")
		if err := renderBlock(b, src, c, indent+"  "); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// renderVerbatim emits a code block inside a verbatim environment, unescaped.
func renderVerbatim(b *strings.Builder, src []byte, n ast.Node, indent string) {
	b.WriteString(indent + "\\begin{verbatim}\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	b.WriteString(indent + `\end{verbatim}`)
}

// renderInlines renders the inline children of n.
func renderInlines(b *strings.Builder, src []byte, n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		renderInline(b, src, c)
	}
}

func renderInline(b *strings.Builder, src []byte, n ast.Node) {
	switch node := n.(type) {
	case *ast.Text:
		b.WriteString(Escape(string(node.Segment.Value(src))))
		if node.HardLineBreak() {
			b.WriteString("\\\\\n")
		} else if node.SoftLineBreak() {
			b.WriteString("\n")
		}

	case *ast.String:
		b.WriteString(Escape(string(node.Value)))

	case *ast.Emphasis:
		cmd := `\textit{`
		if node.Level >= 2 {
			cmd = `\textbf{`
		}
		b.WriteString(cmd)
		renderInlines(b, src, node)
		b.WriteString("}")

	case *ast.CodeSpan:
		b.WriteString(`\texttt{`)
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				b.WriteString(Escape(string(t.Segment.Value(src))))
			}
		}
		b.WriteString("}")

	case *ast.Link:
		b.WriteString(`\href{` + urlEscaper.Replace(string(node.Destination)) + "}{")
		renderInlines(b, src, node)
		b.WriteString("}")

	case *ast.AutoLink:
		b.WriteString(`\url{` + urlEscaper.Replace(string(node.URL(src))) + "}")

	case *ast.Image:
		// Letters have no image pipeline; keep the alt text.
		renderInlines(b, src, node)

	case *ast.RawHTML:
		// Dropped, same as HTML blocks.

	default:
		renderInlines(b, src, n)
	}
}

// headingCommand maps a Markdown heading level to a LaTeX sectioning command.
func headingCommand(level int) string {
	switch level {
	case 1:
		return `\section*`
	case 2:
		return `\subsection*`
	case 3:
		return `\subsubsection*`
	default:
		return `\paragraph`
	}
}
