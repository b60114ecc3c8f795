package notion

import (
	"encoding/json"
	"fmt"
)

// DecodeError reports a response body that does not have the expected shape.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var payloadFactories = map[BlockType]func() Payload{
	BlockTypeAudio:            func() Payload { return &Audio{} },
	BlockTypeBookmark:         func() Payload { return &Bookmark{} },
	BlockTypeBreadcrumb:       func() Payload { return &Breadcrumb{} },
	BlockTypeBulletedListItem: func() Payload { return &ListItem{} },
	BlockTypeCallout:          func() Payload { return &Callout{} },
	BlockTypeChildDatabase:    func() Payload { return &ChildDatabase{} },
	BlockTypeChildPage:        func() Payload { return &ChildPage{} },
	BlockTypeCode:             func() Payload { return &Code{} },
	BlockTypeColumn:           func() Payload { return &Column{} },
	BlockTypeColumnList:       func() Payload { return &ColumnList{} },
	BlockTypeDivider:          func() Payload { return &Divider{} },
	BlockTypeEmbed:            func() Payload { return &Embed{} },
	BlockTypeEquation:         func() Payload { return &EquationBlock{} },
	BlockTypeFile:             func() Payload { return &File{} },
	BlockTypeHeading1:         func() Payload { return &Heading{Level: 1} },
	BlockTypeHeading2:         func() Payload { return &Heading{Level: 2} },
	BlockTypeHeading3:         func() Payload { return &Heading{Level: 3} },
	BlockTypeImage:            func() Payload { return &Image{} },
	BlockTypeLinkPreview:      func() Payload { return &LinkPreview{} },
	BlockTypeNumberedListItem: func() Payload { return &ListItem{numbered: true} },
	BlockTypeParagraph:        func() Payload { return &Paragraph{} },
	BlockTypePdf:              func() Payload { return &Pdf{} },
	BlockTypeQuote:            func() Payload { return &Quote{} },
	BlockTypeSyncedBlock:      func() Payload { return &SyncedBlock{} },
	BlockTypeTable:            func() Payload { return &Table{} },
	BlockTypeTableOfContents:  func() Payload { return &TableOfContents{} },
	BlockTypeTableRow:         func() Payload { return &TableRow{} },
	BlockTypeTemplate:         func() Payload { return &Template{} },
	BlockTypeToDo:             func() Payload { return &ToDo{} },
	BlockTypeToggle:           func() Payload { return &Toggle{} },
	BlockTypeVideo:            func() Payload { return &Video{} },
	BlockTypeUnsupported:      func() Payload { return &Unsupported{} },
}

// NewBlock builds a block around a payload. Numbered list items need
// NewNumberedListItem because the payload type is shared.
func NewBlock(id string, hasChildren bool, payload Payload) *Block {
	return &Block{ID: id, HasChildren: hasChildren, Payload: payload}
}

// NewNumberedListItem returns a numbered list item payload.
func NewNumberedListItem(richText ...RichText) *ListItem {
	return &ListItem{RichText: richText, numbered: true}
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		ID          string `json:"id"`
		HasChildren bool   `json:"has_children"`
		Type        string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return &DecodeError{What: "block", Err: err}
	}
	b.ID = head.ID
	b.HasChildren = head.HasChildren

	factory, ok := payloadFactories[BlockType(head.Type)]
	if !ok {
		b.Payload = &Unsupported{Kind: head.Type}
		return nil
	}
	payload := factory()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &DecodeError{What: "block " + head.ID, Err: err}
	}
	if raw, ok := fields[head.Type]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, payload); err != nil {
			return &DecodeError{What: fmt.Sprintf("%s block %s", head.Type, head.ID), Err: err}
		}
	}
	b.Payload = payload
	return nil
}

// RichTexts is an ordered list of spans as it appears in block payloads.
type RichTexts []RichText

type rawRichText struct {
	Type        string          `json:"type"`
	PlainText   string          `json:"plain_text"`
	Href        *string         `json:"href"`
	Annotations Annotations     `json:"annotations"`
	Text        json.RawMessage `json:"text"`
	Mention     json.RawMessage `json:"mention"`
	Equation    json.RawMessage `json:"equation"`
}

func (r *RichTexts) UnmarshalJSON(data []byte) error {
	var raws []rawRichText
	if err := json.Unmarshal(data, &raws); err != nil {
		return &DecodeError{What: "rich text", Err: err}
	}
	out := make(RichTexts, 0, len(raws))
	for _, raw := range raws {
		span, err := decodeRichText(raw)
		if err != nil {
			return err
		}
		out = append(out, span)
	}
	*r = out
	return nil
}

func decodeRichText(raw rawRichText) (RichText, error) {
	href := ""
	if raw.Href != nil {
		href = *raw.Href
	}
	switch raw.Type {
	case "text":
		var text struct {
			Content string `json:"content"`
			Link    *Link  `json:"link"`
		}
		if err := json.Unmarshal(raw.Text, &text); err != nil {
			return nil, &DecodeError{What: "text span", Err: err}
		}
		return &Text{
			Content:     text.Content,
			Link:        text.Link,
			Annotations: raw.Annotations,
			Plain:       raw.PlainText,
			Href:        href,
		}, nil
	case "mention":
		value, err := decodeMention(raw.Mention)
		if err != nil {
			return nil, err
		}
		return &Mention{
			Value:       value,
			Annotations: raw.Annotations,
			Plain:       raw.PlainText,
			Href:        href,
		}, nil
	case "equation":
		var eq struct {
			Expression string `json:"expression"`
		}
		if err := json.Unmarshal(raw.Equation, &eq); err != nil {
			return nil, &DecodeError{What: "equation span", Err: err}
		}
		return &Equation{Expression: eq.Expression, Annotations: raw.Annotations, Plain: raw.PlainText}, nil
	}
	return &UnknownRichText{Kind: raw.Type, Plain: raw.PlainText}, nil
}

func decodeMention(data json.RawMessage) (MentionValue, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, &DecodeError{What: "mention", Err: err}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{What: "mention", Err: err}
	}

	var value MentionValue
	switch head.Type {
	case "user":
		value = &UserMention{}
	case "date":
		value = &DateMention{}
	case "link_preview":
		value = &LinkPreviewMention{}
	case "link_mention":
		value = &LinkMention{}
	case "template_mention":
		value = &TemplateMention{}
	case "page":
		value = &PageMention{}
	case "database":
		value = &DatabaseMention{}
	case "custom_emoji":
		value = &CustomEmojiMention{}
	default:
		return &UnknownMention{Kind: head.Type}, nil
	}
	if raw, ok := fields[head.Type]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, value); err != nil {
			return nil, &DecodeError{What: head.Type + " mention", Err: err}
		}
	}
	return value, nil
}
