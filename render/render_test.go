package render

import (
	"strings"
	"testing"

	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(s string) *jarkup.Text {
	return &jarkup.Text{Props: jarkup.TextProps{Text: s}}
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name       string
		components []jarkup.Component
		want       string
	}{
		{
			name: "paragraph with styles",
			components: []jarkup.Component{
				&jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: []jarkup.InlineComponent{
					plain("Hello "),
					&jarkup.Text{Props: jarkup.TextProps{Text: "world", Bold: jarkup.Bool(true), Italic: jarkup.Bool(false)}},
					&jarkup.Text{Props: jarkup.TextProps{Text: "Ctrl", Kbd: jarkup.Bool(true), Code: jarkup.Bool(false)}},
				}}},
			},
			want: `<p>Hello <strong>world</strong><kbd>Ctrl</kbd></p>`,
		},
		{
			name: "link with colour and favicon",
			components: []jarkup.Component{
				&jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: []jarkup.InlineComponent{
					&jarkup.Text{Props: jarkup.TextProps{Text: "Go", Color: "#b36472", Href: "https://go.dev", Favicon: "https://go.dev/favicon.ico"}},
				}}},
			},
			want: `<p><a href="https://go.dev"><img class="favicon" src="https://go.dev/favicon.ico" alt=""/><span style="color: #b36472">Go</span></a></p>`,
		},
		{
			name: "lists",
			components: []jarkup.Component{
				&jarkup.List{
					Props: jarkup.ListProps{ListStyle: jarkup.ListStyleOrdered},
					Slots: jarkup.ListSlots{Default: []*jarkup.ListItem{
						{Slots: jarkup.ListItemSlots{Default: jarkup.Inlines(plain("one"))}},
						{Slots: jarkup.ListItemSlots{Default: jarkup.Inlines(plain("two"))}},
					}},
				},
			},
			want: `<ol><li>one</li><li>two</li></ol>`,
		},
		{
			name: "table with header",
			components: []jarkup.Component{
				&jarkup.Table{
					Props: jarkup.TableProps{HasColumnHeader: true},
					Slots: jarkup.TableSlots{
						Header: &jarkup.TableRow{Slots: jarkup.TableRowSlots{Default: []*jarkup.TableCell{
							{Slots: jarkup.TableCellSlots{Default: jarkup.Inlines(plain("Name"))}},
						}}},
						Body: []*jarkup.TableRow{
							{Slots: jarkup.TableRowSlots{Default: []*jarkup.TableCell{
								{Slots: jarkup.TableCellSlots{Default: jarkup.Inlines(plain("Ada"))}},
							}}},
						},
					},
				},
			},
			want: `<table><thead><tr><th>Name</th></tr></thead><tbody><tr><td>Ada</td></tr></tbody></table>`,
		},
		{
			name: "toggle and callout",
			components: []jarkup.Component{
				&jarkup.Toggle{Slots: jarkup.ToggleSlots{
					Summary: jarkup.Inlines(plain("More")),
					Default: []jarkup.Component{&jarkup.Divider{}},
				}},
				&jarkup.Callout{
					Props: jarkup.CalloutProps{Type: jarkup.CalloutWarning},
					Slots: jarkup.CalloutSlots{Default: []jarkup.Component{
						&jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: jarkup.Inlines(plain("Careful"))}},
					}},
				},
			},
			want: `<details><summary>More</summary><hr/></details><aside class="callout callout-warning"><p>Careful</p></aside>`,
		},
		{
			name: "code escapes",
			components: []jarkup.Component{
				&jarkup.CodeBlock{Props: jarkup.CodeBlockProps{Code: "a < b && c", Language: "go"}},
			},
			want: `<pre><code class="language-go">a &lt; b &amp;&amp; c</code></pre>`,
		},
		{
			name: "bookmark without preview",
			components: []jarkup.Component{
				&jarkup.Bookmark{Props: jarkup.BookmarkProps{URL: "https://example.com"}},
			},
			want: `<div class="bookmark"><p><a href="https://example.com">https://example.com</a></p></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HTML(tt.components)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdown(t *testing.T) {
	components := []jarkup.Component{
		&jarkup.Heading{Props: jarkup.HeadingProps{Level: 1}, Slots: jarkup.HeadingSlots{Default: jarkup.Inlines(plain("Italian Recipes"))}},
		&jarkup.Paragraph{Slots: jarkup.ParagraphSlots{Default: []jarkup.InlineComponent{
			plain("Try the "),
			&jarkup.Text{Props: jarkup.TextProps{Text: "carbonara", Bold: jarkup.Bool(true)}},
		}}},
		&jarkup.List{
			Props: jarkup.ListProps{ListStyle: jarkup.ListStyleUnordered},
			Slots: jarkup.ListSlots{Default: []*jarkup.ListItem{
				{Slots: jarkup.ListItemSlots{Default: jarkup.Inlines(plain("guanciale"))}},
				{Slots: jarkup.ListItemSlots{Default: jarkup.Inlines(plain("pecorino"))}},
			}},
		},
	}

	got, err := Markdown(components)
	require.NoError(t, err)
	assert.Contains(t, got, "# Italian Recipes")
	assert.Contains(t, got, "Try the **carbonara**")
	assert.Contains(t, got, "guanciale")
	assert.Contains(t, got, "pecorino")
}

func TestMarkdownEmpty(t *testing.T) {
	got, err := Markdown(nil)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(got))
}
