package notion

import "strings"

type Color string

const (
	ColorDefault          Color = "default"
	ColorGray             Color = "gray"
	ColorBrown            Color = "brown"
	ColorOrange           Color = "orange"
	ColorYellow           Color = "yellow"
	ColorGreen            Color = "green"
	ColorBlue             Color = "blue"
	ColorPurple           Color = "purple"
	ColorPink             Color = "pink"
	ColorRed              Color = "red"
	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
)

// Base strips the background suffix, so red_background becomes red.
func (c Color) Base() Color {
	return Color(strings.TrimSuffix(string(c), "_background"))
}

type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color"`
}

type Link struct {
	URL string `json:"url"`
}

// RichText is one inline span. The concrete types are *Text, *Mention,
// *Equation and *UnknownRichText.
type RichText interface {
	PlainText() string
	richText()
}

type Text struct {
	Content     string
	Link        *Link
	Annotations Annotations
	Plain       string
	Href        string
}

func (t *Text) PlainText() string { return t.Plain }
func (t *Text) richText()         {}

type Mention struct {
	Value       MentionValue
	Annotations Annotations
	Plain       string
	Href        string
}

func (m *Mention) PlainText() string { return m.Plain }
func (m *Mention) richText()         {}

type Equation struct {
	Expression  string
	Annotations Annotations
	Plain       string
}

func (e *Equation) PlainText() string { return e.Plain }
func (e *Equation) richText()         {}

// UnknownRichText keeps a span whose type this package does not know.
type UnknownRichText struct {
	Kind  string
	Plain string
}

func (u *UnknownRichText) PlainText() string { return u.Plain }
func (u *UnknownRichText) richText()         {}

// MentionValue is the typed target of a mention.
type MentionValue interface {
	MentionType() string
}

type UserMention struct {
	ID string `json:"id"`
}

type DateMention struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

type LinkPreviewMention struct {
	URL string `json:"url"`
}

type LinkMention struct {
	Href        string `json:"href"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

type TemplateMention struct {
	Type string `json:"type"`
}

type PageMention struct {
	ID string `json:"id"`
}

type DatabaseMention struct {
	ID string `json:"id"`
}

type CustomEmojiMention struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type UnknownMention struct {
	Kind string
}

func (*UserMention) MentionType() string        { return "user" }
func (*DateMention) MentionType() string        { return "date" }
func (*LinkPreviewMention) MentionType() string { return "link_preview" }
func (*LinkMention) MentionType() string        { return "link_mention" }
func (*TemplateMention) MentionType() string    { return "template_mention" }
func (*PageMention) MentionType() string        { return "page" }
func (*DatabaseMention) MentionType() string    { return "database" }
func (*CustomEmojiMention) MentionType() string { return "custom_emoji" }
func (u *UnknownMention) MentionType() string   { return u.Kind }

// PlainText concatenates the plain text of spans.
func PlainText(spans []RichText) string {
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.PlainText())
	}
	return sb.String()
}
