package jarkup

// TextProps styles a run of text. Nil booleans are left to the renderer's defaults.
type TextProps struct {
	Text            string `json:"text"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Bold            *bool  `json:"bold,omitempty"`
	Italic          *bool  `json:"italic,omitempty"`
	Underline       *bool  `json:"underline,omitempty"`
	Strikethrough   *bool  `json:"strikethrough,omitempty"`
	Katex           *bool  `json:"katex,omitempty"`
	Code            *bool  `json:"code,omitempty"`
	Kbd             *bool  `json:"kbd,omitempty"`
	Ruby            string `json:"ruby,omitempty"`
	Href            string `json:"href,omitempty"`
	Favicon         string `json:"favicon,omitempty"`
}

// Text is a styled span of text.
type Text struct {
	ID    string
	Props TextProps
}

func (t *Text) Type() string     { return "Text" }
func (t *Text) component()       {}
func (t *Text) inlineComponent() {}
func (t *Text) MarshalJSON() ([]byte, error) {
	return marshal(t.Type(), t.ID, t.Props, nil)
}

type IconProps struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// Icon is an inline image such as a custom emoji.
type Icon struct {
	ID    string
	Props IconProps
}

func (i *Icon) Type() string     { return "Icon" }
func (i *Icon) component()       {}
func (i *Icon) inlineComponent() {}
func (i *Icon) MarshalJSON() ([]byte, error) {
	return marshal(i.Type(), i.ID, i.Props, nil)
}

type KatexProps struct {
	Expression string `json:"expression"`
}

// Katex renders a TeX expression.
type Katex struct {
	ID    string
	Props KatexProps
}

func (k *Katex) Type() string     { return "Katex" }
func (k *Katex) component()       {}
func (k *Katex) inlineComponent() {}
func (k *Katex) MarshalJSON() ([]byte, error) {
	return marshal(k.Type(), k.ID, k.Props, nil)
}
