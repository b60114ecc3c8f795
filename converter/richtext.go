package converter

import (
	"context"
	"fmt"

	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/foomo/notion-jarkup/notion"
)

// ConvertRichText maps spans to inline components in order. Mentions of users,
// dates, pages, databases, templates and link previews have no component and
// are left out. Links get a favicon when one can be found.
func (c *Converter) ConvertRichText(ctx context.Context, spans []notion.RichText) ([]jarkup.InlineComponent, error) {
	out := make([]jarkup.InlineComponent, 0, len(spans))
	for _, span := range spans {
		switch s := span.(type) {
		case *notion.Text:
			out = append(out, c.convertText(ctx, s))
		case *notion.Mention:
			component, err := c.convertMention(ctx, s)
			if err != nil {
				return nil, err
			}
			if component != nil {
				out = append(out, component)
			}
		case *notion.Equation:
			out = append(out, &jarkup.Text{Props: jarkup.TextProps{
				Text:  s.Expression,
				Katex: jarkup.Bool(true),
			}})
		case *notion.UnknownRichText:
			return nil, fmt.Errorf("%w %q", ErrUnknownRichText, s.Kind)
		default:
			return nil, fmt.Errorf("%w %T", ErrUnknownRichText, span)
		}
	}
	return out, nil
}

func (c *Converter) convertText(ctx context.Context, t *notion.Text) *jarkup.Text {
	a := t.Annotations
	props := jarkup.TextProps{
		Text:            t.Plain,
		Color:           foregroundColors[a.Color],
		BackgroundColor: backgroundColors[a.Color],
		Bold:            jarkup.Bool(a.Bold),
		Italic:          jarkup.Bool(a.Italic),
		Underline:       jarkup.Bool(a.Underline),
		Strikethrough:   jarkup.Bool(a.Strikethrough),
		Code:            jarkup.Bool(a.Code),
	}
	if a.Code && IsKeyboardKey(t.Plain) {
		props.Code = jarkup.Bool(false)
		props.Kbd = jarkup.Bool(true)
	}
	if t.Link != nil && t.Link.URL != "" {
		props.Href = t.Link.URL
		props.Favicon = c.enricher.FetchFavicon(ctx, t.Link.URL)
	}
	return &jarkup.Text{Props: props}
}

func (c *Converter) convertMention(ctx context.Context, m *notion.Mention) (jarkup.InlineComponent, error) {
	switch v := m.Value.(type) {
	case *notion.LinkMention:
		return &jarkup.Text{Props: jarkup.TextProps{
			Text:    m.Plain,
			Href:    v.Href,
			Favicon: c.enricher.FetchFavicon(ctx, v.Href),
		}}, nil
	case *notion.CustomEmojiMention:
		return &jarkup.Icon{Props: jarkup.IconProps{Src: v.URL, Alt: v.Name}}, nil
	case *notion.UserMention, *notion.DateMention, *notion.LinkPreviewMention,
		*notion.TemplateMention, *notion.PageMention, *notion.DatabaseMention:
		return nil, nil
	case nil:
		return nil, fmt.Errorf("%w: mention without value", ErrUnknownRichText)
	default:
		return nil, fmt.Errorf("%w: mention %q", ErrUnknownRichText, v.MentionType())
	}
}
