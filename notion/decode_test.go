package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected BlockType
		check    func(t *testing.T, b *Block)
	}{
		{
			name:     "paragraph with link",
			json:     `{"object":"block","id":"p1","has_children":false,"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"Go","link":{"url":"https://go.dev"}},"annotations":{"bold":true,"italic":false,"strikethrough":false,"underline":false,"code":false,"color":"red_background"},"plain_text":"Go","href":"https://go.dev"}],"color":"default"}}`,
			expected: BlockTypeParagraph,
			check: func(t *testing.T, b *Block) {
				p := b.Payload.(*Paragraph)
				require.Len(t, p.RichText, 1)
				text := p.RichText[0].(*Text)
				assert.Equal(t, "Go", text.Plain)
				assert.Equal(t, "https://go.dev", text.Link.URL)
				assert.True(t, text.Annotations.Bold)
				assert.Equal(t, ColorRedBackground, text.Annotations.Color)
			},
		},
		{
			name:     "toggleable heading",
			json:     `{"id":"h2","has_children":true,"type":"heading_2","heading_2":{"rich_text":[],"is_toggleable":true,"color":"default"}}`,
			expected: BlockTypeHeading2,
			check: func(t *testing.T, b *Block) {
				h := b.Payload.(*Heading)
				assert.Equal(t, 2, h.Level)
				assert.True(t, h.IsToggleable)
				assert.True(t, b.HasChildren)
			},
		},
		{
			name:     "numbered list item",
			json:     `{"id":"n1","type":"numbered_list_item","numbered_list_item":{"rich_text":[],"color":"default"}}`,
			expected: BlockTypeNumberedListItem,
			check: func(t *testing.T, b *Block) {
				assert.True(t, b.Payload.(*ListItem).Numbered())
			},
		},
		{
			name:     "external image",
			json:     `{"id":"i1","type":"image","image":{"type":"external","external":{"url":"https://example.com/a.png"},"caption":[{"type":"text","text":{"content":"A"},"plain_text":"A"}]}}`,
			expected: BlockTypeImage,
			check: func(t *testing.T, b *Block) {
				img := b.Payload.(*Image)
				assert.Equal(t, "https://example.com/a.png", img.URL())
				assert.Equal(t, "A", PlainText(img.Caption))
			},
		},
		{
			name:     "table row",
			json:     `{"id":"r1","type":"table_row","table_row":{"cells":[[{"type":"text","text":{"content":"a"},"plain_text":"a"}],[]]}}`,
			expected: BlockTypeTableRow,
			check: func(t *testing.T, b *Block) {
				row := b.Payload.(*TableRow)
				require.Len(t, row.Cells, 2)
				assert.Len(t, row.Cells[0], 1)
				assert.Empty(t, row.Cells[1])
			},
		},
		{
			name:     "unknown type becomes unsupported",
			json:     `{"id":"x1","type":"ai_block","ai_block":{}}`,
			expected: BlockType("ai_block"),
			check: func(t *testing.T, b *Block) {
				assert.IsType(t, &Unsupported{}, b.Payload)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Block
			require.NoError(t, json.Unmarshal([]byte(tt.json), &b))
			assert.Equal(t, tt.expected, b.Type())
			tt.check(t, &b)
		})
	}
}

func TestRichTextUnmarshalMentions(t *testing.T) {
	data := `[
		{"type":"mention","mention":{"type":"user","user":{"id":"u1"}},"plain_text":"@Someone"},
		{"type":"mention","mention":{"type":"link_mention","link_mention":{"href":"https://example.com/x"}},"plain_text":"Example"},
		{"type":"mention","mention":{"type":"custom_emoji","custom_emoji":{"id":"e1","name":"party","url":"https://example.com/party.png"}},"plain_text":":party:"},
		{"type":"mention","mention":{"type":"brand_new"},"plain_text":"?"},
		{"type":"equation","equation":{"expression":"e=mc^2"},"plain_text":"e=mc^2"},
		{"type":"hologram","plain_text":"?"}
	]`

	var spans RichTexts
	require.NoError(t, json.Unmarshal([]byte(data), &spans))
	require.Len(t, spans, 6)

	assert.IsType(t, &UserMention{}, spans[0].(*Mention).Value)
	assert.Equal(t, "https://example.com/x", spans[1].(*Mention).Value.(*LinkMention).Href)
	emoji := spans[2].(*Mention).Value.(*CustomEmojiMention)
	assert.Equal(t, "party", emoji.Name)
	assert.Equal(t, "brand_new", spans[3].(*Mention).Value.MentionType())
	assert.Equal(t, "e=mc^2", spans[4].(*Equation).Expression)
	assert.Equal(t, "hologram", spans[5].(*UnknownRichText).Kind)
}

func TestBlockUnmarshalMalformedPayload(t *testing.T) {
	var b Block
	err := json.Unmarshal([]byte(`{"id":"p1","type":"paragraph","paragraph":{"rich_text":"oops"}}`), &b)
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "ChildPage", BlockTypeChildPage.DisplayName())
	assert.Equal(t, "ToDo", BlockTypeToDo.DisplayName())
	assert.Equal(t, "Audio", BlockTypeAudio.DisplayName())
	assert.Equal(t, "Unsupported", BlockTypeUnsupported.DisplayName())
}
