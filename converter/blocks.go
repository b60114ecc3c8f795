package converter

import (
	"context"

	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/foomo/notion-jarkup/notion"
)

// frame converts the children of one parent. It owns the output list, and
// the last component in it is what a following list item may merge into.
type frame struct {
	c     *Converter
	ctx   context.Context
	depth int
	out   []jarkup.Component
}

var _ notion.Visitor = (*frame)(nil)

func (f *frame) emit(components ...jarkup.Component) {
	f.out = append(f.out, components...)
}

func (f *frame) last() jarkup.Component {
	if len(f.out) == 0 {
		return nil
	}
	return f.out[len(f.out)-1]
}

func (f *frame) children(b *notion.Block) ([]jarkup.Component, error) {
	if !b.HasChildren {
		return nil, nil
	}
	return f.c.convertChildren(f.ctx, b.ID, f.depth+1)
}

func (f *frame) richText(spans []notion.RichText) ([]jarkup.InlineComponent, error) {
	return f.c.ConvertRichText(f.ctx, spans)
}

func (f *frame) unsupported(b *notion.Block) error {
	if f.c.config.EnableUnsupportedBlock {
		f.emit(&jarkup.Unsupported{
			ID:    b.ID,
			Props: jarkup.UnsupportedProps{Details: "Notion: `" + b.Type().DisplayName() + " Block` is not supported."},
		})
	}
	return nil
}

// leading returns the block's own text as a paragraph followed by its
// children, as used by callouts and quotes.
func (f *frame) leading(b *notion.Block, spans []notion.RichText) ([]jarkup.Component, error) {
	var out []jarkup.Component
	if len(spans) > 0 {
		inlines, err := f.richText(spans)
		if err != nil {
			return nil, err
		}
		out = append(out, &jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: inlines}})
	}
	children, err := f.children(b)
	if err != nil {
		return nil, err
	}
	return append(out, children...), nil
}

func (f *frame) listItem(b *notion.Block, p *notion.ListItem, style jarkup.ListStyle) error {
	inlines, err := f.richText(p.RichText)
	if err != nil {
		return err
	}
	item := &jarkup.ListItem{ID: b.ID, Slots: jarkup.ListItemSlots{Default: inlines}}

	if list, ok := f.last().(*jarkup.List); ok && list.Accepts(style) {
		list.Slots.Default = append(list.Slots.Default, item)
		return nil
	}
	f.emit(&jarkup.List{
		Props: jarkup.ListProps{ListStyle: style},
		Slots: jarkup.ListSlots{Default: []*jarkup.ListItem{item}},
	})
	return nil
}

func (f *frame) VisitBulletedListItem(b *notion.Block, p *notion.ListItem) error {
	return f.listItem(b, p, jarkup.ListStyleUnordered)
}

func (f *frame) VisitNumberedListItem(b *notion.Block, p *notion.ListItem) error {
	return f.listItem(b, p, jarkup.ListStyleOrdered)
}

func (f *frame) VisitParagraph(b *notion.Block, p *notion.Paragraph) error {
	inlines, err := f.richText(p.RichText)
	if err != nil {
		return err
	}
	f.emit(&jarkup.Paragraph{ID: b.ID, Slots: jarkup.ParagraphSlots{Default: inlines}})
	return nil
}

// VisitHeading emits a toggle instead of a heading when the heading folds its
// children.
func (f *frame) VisitHeading(b *notion.Block, p *notion.Heading) error {
	inlines, err := f.richText(p.RichText)
	if err != nil {
		return err
	}
	if !p.IsToggleable {
		f.emit(&jarkup.Heading{
			ID:    b.ID,
			Props: jarkup.HeadingProps{Level: p.Level},
			Slots: jarkup.HeadingSlots{Default: inlines},
		})
		return nil
	}
	children, err := f.children(b)
	if err != nil {
		return err
	}
	f.emit(&jarkup.Toggle{ID: b.ID, Slots: jarkup.ToggleSlots{Default: children, Summary: inlines}})
	return nil
}

func (f *frame) VisitToggle(b *notion.Block, p *notion.Toggle) error {
	summary, err := f.richText(p.RichText)
	if err != nil {
		return err
	}
	// toggles are fetched even when has_children is unset
	children, err := f.c.convertChildren(f.ctx, b.ID, f.depth+1)
	if err != nil {
		return err
	}
	f.emit(&jarkup.Toggle{ID: b.ID, Slots: jarkup.ToggleSlots{Default: children, Summary: summary}})
	return nil
}

func (f *frame) VisitCallout(b *notion.Block, p *notion.Callout) error {
	content, err := f.leading(b, p.RichText)
	if err != nil {
		return err
	}
	f.emit(&jarkup.Callout{
		ID:    b.ID,
		Props: jarkup.CalloutProps{Type: calloutType(p.Color)},
		Slots: jarkup.CalloutSlots{Default: content},
	})
	return nil
}

func (f *frame) VisitQuote(b *notion.Block, p *notion.Quote) error {
	content, err := f.leading(b, p.RichText)
	if err != nil {
		return err
	}
	f.emit(&jarkup.BlockQuote{ID: b.ID, Slots: jarkup.BlockQuoteSlots{Default: content}})
	return nil
}

func (f *frame) VisitCode(b *notion.Block, p *notion.Code) error {
	caption, err := f.richText(p.Caption)
	if err != nil {
		return err
	}
	f.emit(&jarkup.CodeBlock{
		ID: b.ID,
		Props: jarkup.CodeBlockProps{
			Code:     notion.PlainText(p.RichText),
			Language: p.Language,
		},
		Slots: jarkup.CodeBlockSlots{Default: caption},
	})
	return nil
}

func (f *frame) VisitDivider(b *notion.Block, _ *notion.Divider) error {
	f.emit(&jarkup.Divider{ID: b.ID})
	return nil
}

func (f *frame) VisitEquation(b *notion.Block, p *notion.EquationBlock) error {
	f.emit(&jarkup.Katex{ID: b.ID, Props: jarkup.KatexProps{Expression: p.Expression}})
	return nil
}

func (f *frame) VisitImage(b *notion.Block, p *notion.Image) error {
	f.emit(&jarkup.Image{
		ID: b.ID,
		Props: jarkup.ImageProps{
			Src: p.URL(),
			Alt: notion.PlainText(p.Caption),
		},
	})
	return nil
}

func (f *frame) VisitFile(b *notion.Block, p *notion.File) error {
	f.emit(&jarkup.File{
		ID: b.ID,
		Props: jarkup.FileProps{
			Src:  p.URL(),
			Name: p.Name,
		},
	})
	return nil
}

// VisitBookmark looks up a preview of the target page. A failed lookup leaves
// the preview fields empty.
func (f *frame) VisitBookmark(b *notion.Block, p *notion.Bookmark) error {
	preview := f.c.enricher.FetchBookmarkPreview(f.ctx, p.URL)
	f.emit(&jarkup.Bookmark{
		ID: b.ID,
		Props: jarkup.BookmarkProps{
			URL:         p.URL,
			Title:       preview.Title,
			Description: preview.Description,
			Image:       preview.Image,
		},
	})
	return nil
}

// VisitTable moves the first row into the header slot when the table has a
// column header. Children that are not rows are dropped.
func (f *frame) VisitTable(b *notion.Block, p *notion.Table) error {
	children, err := f.c.convertChildren(f.ctx, b.ID, f.depth+1)
	if err != nil {
		return err
	}

	rows := make([]*jarkup.TableRow, 0, len(children))
	for _, child := range children {
		if row, ok := child.(*jarkup.TableRow); ok {
			rows = append(rows, row)
		}
	}

	table := &jarkup.Table{
		ID: b.ID,
		Props: jarkup.TableProps{
			HasColumnHeader: p.HasColumnHeader,
			HasRowHeader:    p.HasRowHeader,
		},
	}
	if p.HasColumnHeader && len(rows) > 0 {
		table.Slots.Header = rows[0]
		rows = rows[1:]
	}
	table.Slots.Body = rows
	f.emit(table)
	return nil
}

func (f *frame) VisitTableRow(b *notion.Block, p *notion.TableRow) error {
	cells := make([]*jarkup.TableCell, 0, len(p.Cells))
	for _, cell := range p.Cells {
		inlines, err := f.richText(cell)
		if err != nil {
			return err
		}
		cells = append(cells, &jarkup.TableCell{Slots: jarkup.TableCellSlots{Default: inlines}})
	}
	f.emit(&jarkup.TableRow{ID: b.ID, Slots: jarkup.TableRowSlots{Default: cells}})
	return nil
}

// Layout blocks and the table of contents produce nothing, and their children
// are not visited.

func (f *frame) VisitColumn(*notion.Block, *notion.Column) error                   { return nil }
func (f *frame) VisitColumnList(*notion.Block, *notion.ColumnList) error           { return nil }
func (f *frame) VisitTableOfContents(*notion.Block, *notion.TableOfContents) error { return nil }

// PDFs are dropped whether or not placeholders are enabled.
func (f *frame) VisitPdf(*notion.Block, *notion.Pdf) error { return nil }

func (f *frame) VisitAudio(b *notion.Block, _ *notion.Audio) error                 { return f.unsupported(b) }
func (f *frame) VisitBreadcrumb(b *notion.Block, _ *notion.Breadcrumb) error       { return f.unsupported(b) }
func (f *frame) VisitChildDatabase(b *notion.Block, _ *notion.ChildDatabase) error { return f.unsupported(b) }
func (f *frame) VisitChildPage(b *notion.Block, _ *notion.ChildPage) error         { return f.unsupported(b) }
func (f *frame) VisitEmbed(b *notion.Block, _ *notion.Embed) error                 { return f.unsupported(b) }
func (f *frame) VisitLinkPreview(b *notion.Block, _ *notion.LinkPreview) error     { return f.unsupported(b) }
func (f *frame) VisitSyncedBlock(b *notion.Block, _ *notion.SyncedBlock) error     { return f.unsupported(b) }
func (f *frame) VisitTemplate(b *notion.Block, _ *notion.Template) error           { return f.unsupported(b) }
func (f *frame) VisitToDo(b *notion.Block, _ *notion.ToDo) error                   { return f.unsupported(b) }
func (f *frame) VisitVideo(b *notion.Block, _ *notion.Video) error                 { return f.unsupported(b) }
func (f *frame) VisitUnsupported(b *notion.Block, _ *notion.Unsupported) error     { return f.unsupported(b) }
