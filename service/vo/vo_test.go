package vo

import (
	"encoding/json"
	"testing"

	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	doc := Document{
		BlockID: "page-1",
		Format:  FormatJSON,
		Components: []jarkup.Component{
			&jarkup.Heading{
				ID:    "h1",
				Props: jarkup.HeadingProps{Level: 1},
				Slots: jarkup.HeadingSlots{Default: jarkup.Inlines(&jarkup.Text{Props: jarkup.TextProps{Text: "Italian Recipes"}})},
			},
			&jarkup.Divider{ID: "d1"},
		},
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"blockId": "page-1",
		"format": "json",
		"components": [
			{"type": "Heading", "id": "h1", "props": {"level": 1}, "slots": {"default": [{"type": "Text", "props": {"text": "Italian Recipes"}}]}},
			{"type": "Divider", "id": "d1"}
		]
	}`, string(jsonData))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatJSON},
		{in: "json", want: FormatJSON},
		{in: "html", want: FormatHTML},
		{in: "markdown", want: FormatMarkdown},
		{in: "pdf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
