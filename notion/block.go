// Package notion models the block tree exposed by the Notion API and provides
// sources that list the children of a block.
package notion

import "strings"

type BlockType string

const (
	BlockTypeAudio            BlockType = "audio"
	BlockTypeBookmark         BlockType = "bookmark"
	BlockTypeBreadcrumb       BlockType = "breadcrumb"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeChildDatabase    BlockType = "child_database"
	BlockTypeChildPage        BlockType = "child_page"
	BlockTypeCode             BlockType = "code"
	BlockTypeColumn           BlockType = "column"
	BlockTypeColumnList       BlockType = "column_list"
	BlockTypeDivider          BlockType = "divider"
	BlockTypeEmbed            BlockType = "embed"
	BlockTypeEquation         BlockType = "equation"
	BlockTypeFile             BlockType = "file"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeImage            BlockType = "image"
	BlockTypeLinkPreview      BlockType = "link_preview"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypePdf              BlockType = "pdf"
	BlockTypeQuote            BlockType = "quote"
	BlockTypeSyncedBlock      BlockType = "synced_block"
	BlockTypeTable            BlockType = "table"
	BlockTypeTableOfContents  BlockType = "table_of_contents"
	BlockTypeTableRow         BlockType = "table_row"
	BlockTypeTemplate         BlockType = "template"
	BlockTypeToDo             BlockType = "to_do"
	BlockTypeToggle           BlockType = "toggle"
	BlockTypeVideo            BlockType = "video"
	BlockTypeUnsupported      BlockType = "unsupported"
)

// DisplayName renders the type in CamelCase, e.g. child_page becomes ChildPage.
func (t BlockType) DisplayName() string {
	parts := strings.Split(string(t), "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

// Block is one node of the source tree. Children are not embedded; they are
// listed separately by a BlockSource when HasChildren is set.
type Block struct {
	ID          string
	HasChildren bool
	Payload     Payload
}

func (b *Block) Type() BlockType {
	if b.Payload == nil {
		return BlockTypeUnsupported
	}
	return b.Payload.Type()
}

// Accept dispatches the block to the visitor method of its type.
func (b *Block) Accept(v Visitor) error {
	if b.Payload == nil {
		return v.VisitUnsupported(b, &Unsupported{})
	}
	return b.Payload.accept(b, v)
}

// Payload is the type specific part of a block. The set of payloads is closed:
// every payload dispatches to its own Visitor method, so adding a block type
// breaks every Visitor implementation until it handles the new type.
type Payload interface {
	Type() BlockType
	accept(b *Block, v Visitor) error
}

// Visitor handles each block type.
type Visitor interface {
	VisitAudio(b *Block, p *Audio) error
	VisitBookmark(b *Block, p *Bookmark) error
	VisitBreadcrumb(b *Block, p *Breadcrumb) error
	VisitBulletedListItem(b *Block, p *ListItem) error
	VisitCallout(b *Block, p *Callout) error
	VisitChildDatabase(b *Block, p *ChildDatabase) error
	VisitChildPage(b *Block, p *ChildPage) error
	VisitCode(b *Block, p *Code) error
	VisitColumn(b *Block, p *Column) error
	VisitColumnList(b *Block, p *ColumnList) error
	VisitDivider(b *Block, p *Divider) error
	VisitEmbed(b *Block, p *Embed) error
	VisitEquation(b *Block, p *EquationBlock) error
	VisitFile(b *Block, p *File) error
	VisitHeading(b *Block, p *Heading) error
	VisitImage(b *Block, p *Image) error
	VisitLinkPreview(b *Block, p *LinkPreview) error
	VisitNumberedListItem(b *Block, p *ListItem) error
	VisitParagraph(b *Block, p *Paragraph) error
	VisitPdf(b *Block, p *Pdf) error
	VisitQuote(b *Block, p *Quote) error
	VisitSyncedBlock(b *Block, p *SyncedBlock) error
	VisitTable(b *Block, p *Table) error
	VisitTableOfContents(b *Block, p *TableOfContents) error
	VisitTableRow(b *Block, p *TableRow) error
	VisitTemplate(b *Block, p *Template) error
	VisitToDo(b *Block, p *ToDo) error
	VisitToggle(b *Block, p *Toggle) error
	VisitVideo(b *Block, p *Video) error
	VisitUnsupported(b *Block, p *Unsupported) error
}

// FileObject is a file hosted by Notion or linked externally.
type FileObject struct {
	Kind     string    `json:"type"`
	External *fileURL  `json:"external,omitempty"`
	Hosted   *fileURL  `json:"file,omitempty"`
	Caption  RichTexts `json:"caption,omitempty"`
	Name     string    `json:"name,omitempty"`
}

type fileURL struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

// URL returns the download location regardless of where the file is hosted.
func (f *FileObject) URL() string {
	switch {
	case f.External != nil:
		return f.External.URL
	case f.Hosted != nil:
		return f.Hosted.URL
	}
	return ""
}

type Audio struct{ FileObject }

type Bookmark struct {
	URL     string    `json:"url"`
	Caption RichTexts `json:"caption,omitempty"`
}

type Breadcrumb struct{}

// ListItem is the payload of both bulleted and numbered list items.
type ListItem struct {
	RichText RichTexts `json:"rich_text"`
	Color    Color     `json:"color"`
	numbered bool
}

type Callout struct {
	RichText RichTexts `json:"rich_text"`
	Color    Color     `json:"color"`
}

type ChildDatabase struct {
	Title string `json:"title"`
}

type ChildPage struct {
	Title string `json:"title"`
}

type Code struct {
	RichText RichTexts `json:"rich_text"`
	Caption  RichTexts `json:"caption"`
	Language string    `json:"language"`
}

type Column struct{}

type ColumnList struct{}

type Divider struct{}

type Embed struct {
	URL string `json:"url"`
}

type EquationBlock struct {
	Expression string `json:"expression"`
}

type File struct{ FileObject }

// Heading is the payload of heading_1, heading_2 and heading_3.
type Heading struct {
	RichText     RichTexts `json:"rich_text"`
	Color        Color     `json:"color"`
	IsToggleable bool      `json:"is_toggleable"`
	Level        int       `json:"-"`
}

type Image struct{ FileObject }

type LinkPreview struct {
	URL string `json:"url"`
}

type Paragraph struct {
	RichText RichTexts `json:"rich_text"`
	Color    Color     `json:"color"`
}

type Pdf struct{ FileObject }

type Quote struct {
	RichText RichTexts `json:"rich_text"`
	Color    Color     `json:"color"`
}

type SyncedBlock struct {
	SyncedFrom *struct {
		BlockID string `json:"block_id"`
	} `json:"synced_from"`
}

type Table struct {
	TableWidth      int  `json:"table_width"`
	HasColumnHeader bool `json:"has_column_header"`
	HasRowHeader    bool `json:"has_row_header"`
}

type TableOfContents struct {
	Color Color `json:"color"`
}

type TableRow struct {
	Cells []RichTexts `json:"cells"`
}

type Template struct {
	RichText RichTexts `json:"rich_text"`
}

type ToDo struct {
	RichText RichTexts `json:"rich_text"`
	Checked  bool      `json:"checked"`
	Color    Color     `json:"color"`
}

type Toggle struct {
	RichText RichTexts `json:"rich_text"`
	Color    Color     `json:"color"`
}

type Video struct{ FileObject }

// Unsupported is a block the API itself reports as unsupported, or a type
// unknown to this package.
type Unsupported struct {
	Kind string `json:"-"`
}

func (*Audio) Type() BlockType           { return BlockTypeAudio }
func (*Bookmark) Type() BlockType        { return BlockTypeBookmark }
func (*Breadcrumb) Type() BlockType      { return BlockTypeBreadcrumb }
func (*Callout) Type() BlockType         { return BlockTypeCallout }
func (*ChildDatabase) Type() BlockType   { return BlockTypeChildDatabase }
func (*ChildPage) Type() BlockType       { return BlockTypeChildPage }
func (*Code) Type() BlockType            { return BlockTypeCode }
func (*Column) Type() BlockType          { return BlockTypeColumn }
func (*ColumnList) Type() BlockType      { return BlockTypeColumnList }
func (*Divider) Type() BlockType         { return BlockTypeDivider }
func (*Embed) Type() BlockType           { return BlockTypeEmbed }
func (*EquationBlock) Type() BlockType   { return BlockTypeEquation }
func (*File) Type() BlockType            { return BlockTypeFile }
func (*Image) Type() BlockType           { return BlockTypeImage }
func (*LinkPreview) Type() BlockType     { return BlockTypeLinkPreview }
func (*Paragraph) Type() BlockType       { return BlockTypeParagraph }
func (*Pdf) Type() BlockType             { return BlockTypePdf }
func (*Quote) Type() BlockType           { return BlockTypeQuote }
func (*SyncedBlock) Type() BlockType     { return BlockTypeSyncedBlock }
func (*Table) Type() BlockType           { return BlockTypeTable }
func (*TableOfContents) Type() BlockType { return BlockTypeTableOfContents }
func (*TableRow) Type() BlockType        { return BlockTypeTableRow }
func (*Template) Type() BlockType        { return BlockTypeTemplate }
func (*ToDo) Type() BlockType            { return BlockTypeToDo }
func (*Toggle) Type() BlockType          { return BlockTypeToggle }
func (*Video) Type() BlockType           { return BlockTypeVideo }

func (u *Unsupported) Type() BlockType {
	if u.Kind != "" {
		return BlockType(u.Kind)
	}
	return BlockTypeUnsupported
}

func (li *ListItem) Type() BlockType {
	if li.numbered {
		return BlockTypeNumberedListItem
	}
	return BlockTypeBulletedListItem
}

func (h *Heading) Type() BlockType {
	switch h.Level {
	case 2:
		return BlockTypeHeading2
	case 3:
		return BlockTypeHeading3
	}
	return BlockTypeHeading1
}

func (p *Audio) accept(b *Block, v Visitor) error           { return v.VisitAudio(b, p) }
func (p *Bookmark) accept(b *Block, v Visitor) error        { return v.VisitBookmark(b, p) }
func (p *Breadcrumb) accept(b *Block, v Visitor) error      { return v.VisitBreadcrumb(b, p) }
func (p *Callout) accept(b *Block, v Visitor) error         { return v.VisitCallout(b, p) }
func (p *ChildDatabase) accept(b *Block, v Visitor) error   { return v.VisitChildDatabase(b, p) }
func (p *ChildPage) accept(b *Block, v Visitor) error       { return v.VisitChildPage(b, p) }
func (p *Code) accept(b *Block, v Visitor) error            { return v.VisitCode(b, p) }
func (p *Column) accept(b *Block, v Visitor) error          { return v.VisitColumn(b, p) }
func (p *ColumnList) accept(b *Block, v Visitor) error      { return v.VisitColumnList(b, p) }
func (p *Divider) accept(b *Block, v Visitor) error         { return v.VisitDivider(b, p) }
func (p *Embed) accept(b *Block, v Visitor) error           { return v.VisitEmbed(b, p) }
func (p *EquationBlock) accept(b *Block, v Visitor) error   { return v.VisitEquation(b, p) }
func (p *File) accept(b *Block, v Visitor) error            { return v.VisitFile(b, p) }
func (p *Heading) accept(b *Block, v Visitor) error         { return v.VisitHeading(b, p) }
func (p *Image) accept(b *Block, v Visitor) error           { return v.VisitImage(b, p) }
func (p *LinkPreview) accept(b *Block, v Visitor) error     { return v.VisitLinkPreview(b, p) }
func (p *Paragraph) accept(b *Block, v Visitor) error       { return v.VisitParagraph(b, p) }
func (p *Pdf) accept(b *Block, v Visitor) error             { return v.VisitPdf(b, p) }
func (p *Quote) accept(b *Block, v Visitor) error           { return v.VisitQuote(b, p) }
func (p *SyncedBlock) accept(b *Block, v Visitor) error     { return v.VisitSyncedBlock(b, p) }
func (p *Table) accept(b *Block, v Visitor) error           { return v.VisitTable(b, p) }
func (p *TableOfContents) accept(b *Block, v Visitor) error { return v.VisitTableOfContents(b, p) }
func (p *TableRow) accept(b *Block, v Visitor) error        { return v.VisitTableRow(b, p) }
func (p *Template) accept(b *Block, v Visitor) error        { return v.VisitTemplate(b, p) }
func (p *ToDo) accept(b *Block, v Visitor) error            { return v.VisitToDo(b, p) }
func (p *Toggle) accept(b *Block, v Visitor) error          { return v.VisitToggle(b, p) }
func (p *Video) accept(b *Block, v Visitor) error           { return v.VisitVideo(b, p) }
func (p *Unsupported) accept(b *Block, v Visitor) error     { return v.VisitUnsupported(b, p) }

func (li *ListItem) accept(b *Block, v Visitor) error {
	if li.numbered {
		return v.VisitNumberedListItem(b, li)
	}
	return v.VisitBulletedListItem(b, li)
}

// Numbered reports whether the item belongs to a numbered list.
func (li *ListItem) Numbered() bool { return li.numbered }
