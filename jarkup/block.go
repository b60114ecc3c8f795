package jarkup

import "encoding/json"

type ListStyle string

const (
	ListStyleUnordered ListStyle = "unordered"
	ListStyleOrdered   ListStyle = "ordered"
)

type CalloutType string

const (
	CalloutNote      CalloutType = "note"
	CalloutTip       CalloutType = "tip"
	CalloutImportant CalloutType = "important"
	CalloutWarning   CalloutType = "warning"
	CalloutCaution   CalloutType = "caution"
)

// nonNil keeps empty slots serialised as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type defaultSlot[T any] struct {
	Default []T `json:"default"`
}

func slot[T any](items []T) defaultSlot[T] {
	return defaultSlot[T]{Default: nonNil(items)}
}

// Paragraph

type ParagraphSlots struct {
	Default []InlineComponent
}

type Paragraph struct {
	ID    string
	Slots ParagraphSlots
}

func (p *Paragraph) Type() string    { return "Paragraph" }
func (p *Paragraph) component()      {}
func (p *Paragraph) blockComponent() {}
func (p *Paragraph) MarshalJSON() ([]byte, error) {
	return marshal(p.Type(), p.ID, nil, slot(p.Slots.Default))
}

// Heading

type HeadingProps struct {
	Level int `json:"level"`
}

type HeadingSlots struct {
	Default []InlineComponent
}

type Heading struct {
	ID    string
	Props HeadingProps
	Slots HeadingSlots
}

func (h *Heading) Type() string    { return "Heading" }
func (h *Heading) component()      {}
func (h *Heading) blockComponent() {}
func (h *Heading) MarshalJSON() ([]byte, error) {
	return marshal(h.Type(), h.ID, h.Props, slot(h.Slots.Default))
}

// List holds only ListItems.

type ListProps struct {
	ListStyle ListStyle `json:"listStyle,omitempty"`
}

type ListSlots struct {
	Default []*ListItem
}

type List struct {
	ID    string
	Props ListProps
	Slots ListSlots
}

func (l *List) Type() string    { return "List" }
func (l *List) component()      {}
func (l *List) blockComponent() {}
func (l *List) MarshalJSON() ([]byte, error) {
	return marshal(l.Type(), l.ID, l.Props, slot(l.Slots.Default))
}

// Accepts reports whether an item of the given style can join this list.
// A list without a recorded style accepts any item.
func (l *List) Accepts(style ListStyle) bool {
	return l.Props.ListStyle == "" || l.Props.ListStyle == style
}

type ListItemSlots struct {
	Default []InlineComponent
}

type ListItem struct {
	ID    string
	Slots ListItemSlots
}

func (li *ListItem) Type() string    { return "ListItem" }
func (li *ListItem) component()      {}
func (li *ListItem) blockComponent() {}
func (li *ListItem) MarshalJSON() ([]byte, error) {
	return marshal(li.Type(), li.ID, nil, slot(li.Slots.Default))
}

// Table

type TableProps struct {
	HasColumnHeader bool   `json:"hasColumnHeader"`
	HasRowHeader    bool   `json:"hasRowHeader"`
	Caption         string `json:"caption,omitempty"`
}

// TableSlots keeps at most one header row apart from the body rows.
type TableSlots struct {
	Header *TableRow
	Body   []*TableRow
}

func (s TableSlots) MarshalJSON() ([]byte, error) {
	out := struct {
		Header []*TableRow `json:"header,omitempty"`
		Body   []*TableRow `json:"body"`
	}{Body: nonNil(s.Body)}
	if s.Header != nil {
		out.Header = []*TableRow{s.Header}
	}
	return json.Marshal(out)
}

type Table struct {
	ID    string
	Props TableProps
	Slots TableSlots
}

func (t *Table) Type() string    { return "Table" }
func (t *Table) component()      {}
func (t *Table) blockComponent() {}
func (t *Table) MarshalJSON() ([]byte, error) {
	return marshal(t.Type(), t.ID, t.Props, t.Slots)
}

type TableRowSlots struct {
	Default []*TableCell
}

type TableRow struct {
	ID    string
	Slots TableRowSlots
}

func (r *TableRow) Type() string    { return "TableRow" }
func (r *TableRow) component()      {}
func (r *TableRow) blockComponent() {}
func (r *TableRow) MarshalJSON() ([]byte, error) {
	return marshal(r.Type(), r.ID, nil, slot(r.Slots.Default))
}

type TableCellSlots struct {
	Default []InlineComponent
}

type TableCell struct {
	ID    string
	Slots TableCellSlots
}

func (c *TableCell) Type() string    { return "TableCell" }
func (c *TableCell) component()      {}
func (c *TableCell) blockComponent() {}
func (c *TableCell) MarshalJSON() ([]byte, error) {
	return marshal(c.Type(), c.ID, nil, slot(c.Slots.Default))
}

// Callout

type CalloutProps struct {
	Type CalloutType `json:"type,omitempty"`
}

type CalloutSlots struct {
	Default []Component
}

type Callout struct {
	ID    string
	Props CalloutProps
	Slots CalloutSlots
}

func (c *Callout) Type() string    { return "Callout" }
func (c *Callout) component()      {}
func (c *Callout) blockComponent() {}
func (c *Callout) MarshalJSON() ([]byte, error) {
	return marshal(c.Type(), c.ID, c.Props, slot(c.Slots.Default))
}

type BlockQuoteSlots struct {
	Default []Component
}

type BlockQuote struct {
	ID    string
	Slots BlockQuoteSlots
}

func (q *BlockQuote) Type() string    { return "BlockQuote" }
func (q *BlockQuote) component()      {}
func (q *BlockQuote) blockComponent() {}
func (q *BlockQuote) MarshalJSON() ([]byte, error) {
	return marshal(q.Type(), q.ID, nil, slot(q.Slots.Default))
}

// Toggle shows Summary and reveals Default on demand.

type ToggleSlots struct {
	Default []Component
	Summary []InlineComponent
}

type Toggle struct {
	ID    string
	Slots ToggleSlots
}

func (t *Toggle) Type() string    { return "Toggle" }
func (t *Toggle) component()      {}
func (t *Toggle) blockComponent() {}
func (t *Toggle) MarshalJSON() ([]byte, error) {
	slots := struct {
		Default []Component       `json:"default"`
		Summary []InlineComponent `json:"summary"`
	}{nonNil(t.Slots.Default), nonNil(t.Slots.Summary)}
	return marshal(t.Type(), t.ID, nil, slots)
}

type Divider struct {
	ID string
}

func (d *Divider) Type() string    { return "Divider" }
func (d *Divider) component()      {}
func (d *Divider) blockComponent() {}
func (d *Divider) MarshalJSON() ([]byte, error) {
	return marshal(d.Type(), d.ID, nil, nil)
}

// CodeBlock; the default slot carries the caption.

type CodeBlockProps struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type CodeBlockSlots struct {
	Default []InlineComponent
}

type CodeBlock struct {
	ID    string
	Props CodeBlockProps
	Slots CodeBlockSlots
}

func (c *CodeBlock) Type() string    { return "CodeBlock" }
func (c *CodeBlock) component()      {}
func (c *CodeBlock) blockComponent() {}
func (c *CodeBlock) MarshalJSON() ([]byte, error) {
	return marshal(c.Type(), c.ID, c.Props, slot(c.Slots.Default))
}

type ImageProps struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type Image struct {
	ID    string
	Props ImageProps
}

func (i *Image) Type() string    { return "Image" }
func (i *Image) component()      {}
func (i *Image) blockComponent() {}
func (i *Image) MarshalJSON() ([]byte, error) {
	return marshal(i.Type(), i.ID, i.Props, nil)
}

type FileProps struct {
	Src  string `json:"src"`
	Name string `json:"name,omitempty"`
}

type File struct {
	ID    string
	Props FileProps
}

func (f *File) Type() string    { return "File" }
func (f *File) component()      {}
func (f *File) blockComponent() {}
func (f *File) MarshalJSON() ([]byte, error) {
	return marshal(f.Type(), f.ID, f.Props, nil)
}

type BookmarkProps struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Bookmark struct {
	ID    string
	Props BookmarkProps
}

func (b *Bookmark) Type() string    { return "Bookmark" }
func (b *Bookmark) component()      {}
func (b *Bookmark) blockComponent() {}
func (b *Bookmark) MarshalJSON() ([]byte, error) {
	return marshal(b.Type(), b.ID, b.Props, nil)
}

type UnsupportedProps struct {
	Details string `json:"details"`
}

// Unsupported is a visible placeholder for content that could not be converted.
type Unsupported struct {
	ID    string
	Props UnsupportedProps
}

func (u *Unsupported) Type() string    { return "Unsupported" }
func (u *Unsupported) component()      {}
func (u *Unsupported) blockComponent() {}
func (u *Unsupported) MarshalJSON() ([]byte, error) {
	return marshal(u.Type(), u.ID, u.Props, nil)
}
