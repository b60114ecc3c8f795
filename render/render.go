// Package render exports component trees as HTML or Markdown.
package render

import (
	"bytes"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/foomo/notion-jarkup/jarkup"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders components as an HTML fragment.
func HTML(components []jarkup.Component) (string, error) {
	var buf bytes.Buffer
	root := Nodes(components)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("failed to render HTML: %w", err)
		}
	}
	return buf.String(), nil
}

// Markdown renders components as Markdown by way of their HTML form.
func Markdown(components []jarkup.Component) (string, error) {
	markdownBytes, err := htmltomarkdown.ConvertNode(Nodes(components))
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return string(markdownBytes), nil
}

// Nodes builds the HTML tree for components below a <div> root.
func Nodes(components []jarkup.Component) *html.Node {
	root := element(atom.Div)
	appendComponents(root, components)
	return root
}

func appendComponents(parent *html.Node, components []jarkup.Component) {
	for _, c := range components {
		if n := componentNode(c); n != nil {
			parent.AppendChild(n)
		}
	}
}

func appendInlines(parent *html.Node, inlines []jarkup.InlineComponent) {
	for _, c := range inlines {
		if n := componentNode(c); n != nil {
			parent.AppendChild(n)
		}
	}
}

func componentNode(c jarkup.Component) *html.Node {
	switch c := c.(type) {
	case *jarkup.Text:
		return textNode(c.Props)
	case *jarkup.Icon:
		return element(atom.Img, attr("class", "icon"), attr("src", c.Props.Src), attr("alt", c.Props.Alt))
	case *jarkup.Katex:
		n := element(atom.Span, attr("class", "katex"))
		n.AppendChild(text(c.Props.Expression))
		return n
	case *jarkup.Paragraph:
		n := element(atom.P)
		appendInlines(n, c.Slots.Default)
		return n
	case *jarkup.Heading:
		level := min(max(c.Props.Level, 1), 6)
		n := element(headingAtoms[level-1])
		appendInlines(n, c.Slots.Default)
		return n
	case *jarkup.List:
		n := element(atom.Ul)
		if c.Props.ListStyle == jarkup.ListStyleOrdered {
			n = element(atom.Ol)
		}
		for _, item := range c.Slots.Default {
			n.AppendChild(componentNode(item))
		}
		return n
	case *jarkup.ListItem:
		n := element(atom.Li)
		appendInlines(n, c.Slots.Default)
		return n
	case *jarkup.Table:
		return tableNode(c)
	case *jarkup.TableRow:
		return rowNode(c, false, false)
	case *jarkup.TableCell:
		n := element(atom.Td)
		appendInlines(n, c.Slots.Default)
		return n
	case *jarkup.Callout:
		n := element(atom.Aside, attr("class", "callout callout-"+string(c.Props.Type)))
		appendComponents(n, c.Slots.Default)
		return n
	case *jarkup.BlockQuote:
		n := element(atom.Blockquote)
		appendComponents(n, c.Slots.Default)
		return n
	case *jarkup.Toggle:
		n := element(atom.Details)
		summary := element(atom.Summary)
		appendInlines(summary, c.Slots.Summary)
		n.AppendChild(summary)
		appendComponents(n, c.Slots.Default)
		return n
	case *jarkup.Divider:
		return element(atom.Hr)
	case *jarkup.CodeBlock:
		return codeNode(c)
	case *jarkup.Image:
		return element(atom.Img, attr("src", c.Props.Src), attr("alt", c.Props.Alt))
	case *jarkup.File:
		name := c.Props.Name
		if name == "" {
			name = c.Props.Src
		}
		p := element(atom.P)
		p.AppendChild(link(c.Props.Src, text(name)))
		return p
	case *jarkup.Bookmark:
		return bookmarkNode(c)
	case *jarkup.Unsupported:
		n := element(atom.P, attr("class", "unsupported"))
		n.AppendChild(text(c.Props.Details))
		return n
	}
	return nil
}

var headingAtoms = [6]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// textNode wraps a text run in one element per style, the link outermost.
func textNode(p jarkup.TextProps) *html.Node {
	n := text(p.Text)
	wrap := func(a atom.Atom, attrs ...html.Attribute) {
		w := element(a, attrs...)
		w.AppendChild(n)
		n = w
	}

	switch {
	case isSet(p.Katex):
		wrap(atom.Span, attr("class", "katex"))
	case isSet(p.Kbd):
		wrap(atom.Kbd)
	case isSet(p.Code):
		wrap(atom.Code)
	}
	if isSet(p.Strikethrough) {
		wrap(atom.S)
	}
	if isSet(p.Underline) {
		wrap(atom.U)
	}
	if isSet(p.Italic) {
		wrap(atom.Em)
	}
	if isSet(p.Bold) {
		wrap(atom.Strong)
	}
	if p.Ruby != "" {
		ruby := element(atom.Ruby)
		ruby.AppendChild(n)
		rt := element(atom.Rt)
		rt.AppendChild(text(p.Ruby))
		ruby.AppendChild(rt)
		n = ruby
	}
	var style []string
	if p.Color != "" {
		style = append(style, "color: "+p.Color)
	}
	if p.BackgroundColor != "" {
		style = append(style, "background-color: "+p.BackgroundColor)
	}
	if len(style) > 0 {
		wrap(atom.Span, attr("style", strings.Join(style, "; ")))
	}
	if p.Href != "" {
		n = link(p.Href, n)
		if p.Favicon != "" {
			n.InsertBefore(element(atom.Img, attr("class", "favicon"), attr("src", p.Favicon), attr("alt", "")), n.FirstChild)
		}
	}
	return n
}

func tableNode(t *jarkup.Table) *html.Node {
	n := element(atom.Table)
	if t.Props.Caption != "" {
		caption := element(atom.Caption)
		caption.AppendChild(text(t.Props.Caption))
		n.AppendChild(caption)
	}
	if t.Slots.Header != nil {
		head := element(atom.Thead)
		head.AppendChild(rowNode(t.Slots.Header, true, false))
		n.AppendChild(head)
	}
	body := element(atom.Tbody)
	for _, row := range t.Slots.Body {
		body.AppendChild(rowNode(row, false, t.Props.HasRowHeader))
	}
	n.AppendChild(body)
	return n
}

func rowNode(r *jarkup.TableRow, header, rowHeader bool) *html.Node {
	n := element(atom.Tr)
	for i, cell := range r.Slots.Default {
		a := atom.Td
		if header || (rowHeader && i == 0) {
			a = atom.Th
		}
		c := element(a)
		appendInlines(c, cell.Slots.Default)
		n.AppendChild(c)
	}
	return n
}

func codeNode(c *jarkup.CodeBlock) *html.Node {
	var attrs []html.Attribute
	if c.Props.Language != "" {
		attrs = append(attrs, attr("class", "language-"+c.Props.Language))
	}
	code := element(atom.Code, attrs...)
	code.AppendChild(text(c.Props.Code))
	pre := element(atom.Pre)
	pre.AppendChild(code)
	if len(c.Slots.Default) == 0 {
		return pre
	}

	figure := element(atom.Figure)
	figure.AppendChild(pre)
	caption := element(atom.Figcaption)
	appendInlines(caption, c.Slots.Default)
	figure.AppendChild(caption)
	return figure
}

func bookmarkNode(b *jarkup.Bookmark) *html.Node {
	n := element(atom.Div, attr("class", "bookmark"))
	title := b.Props.Title
	if title == "" {
		title = b.Props.URL
	}
	p := element(atom.P)
	p.AppendChild(link(b.Props.URL, text(title)))
	n.AppendChild(p)
	if b.Props.Description != "" {
		d := element(atom.P)
		d.AppendChild(text(b.Props.Description))
		n.AppendChild(d)
	}
	if b.Props.Image != "" {
		n.AppendChild(element(atom.Img, attr("src", b.Props.Image), attr("alt", title)))
	}
	return n
}

func isSet(b *bool) bool {
	return b != nil && *b
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func link(href string, child *html.Node) *html.Node {
	a := element(atom.A, attr("href", href))
	a.AppendChild(child)
	return a
}
