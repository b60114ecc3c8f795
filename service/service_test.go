package service

import (
	"context"
	"errors"
	"testing"

	"github.com/foomo/notion-jarkup/converter"
	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/foomo/notion-jarkup/notion"
	"github.com/foomo/notion-jarkup/service/vo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type staticPreviewer map[string]vo.BookmarkPreview

func (p staticPreviewer) FetchBookmarkPreview(_ context.Context, url string) vo.BookmarkPreview {
	return p[url]
}

type failingConverter struct{ err error }

func (c failingConverter) ConvertBlock(context.Context, string) ([]jarkup.Component, error) {
	return nil, c.err
}

func newTestService(t *testing.T) Service {
	t.Helper()
	source := notion.MapSource{
		"page": {
			notion.NewBlock("h", false, &notion.Heading{Level: 1, RichText: notion.RichTexts{&notion.Text{Content: "Title", Plain: "Title"}}}),
			notion.NewBlock("p", false, &notion.Paragraph{RichText: notion.RichTexts{&notion.Text{Content: "Body", Plain: "Body"}}}),
		},
	}
	c := converter.New(zaptest.NewLogger(t), source, nil, nil, converter.DefaultConfig())
	return NewService(zaptest.NewLogger(t), c, staticPreviewer{
		"https://example.com": {Title: "Example"},
	})
}

func TestGetDocument(t *testing.T) {
	s := newTestService(t)

	t.Run("json", func(t *testing.T) {
		doc, err := s.GetDocument(context.Background(), "page", "")
		require.NoError(t, err)
		assert.Equal(t, vo.FormatJSON, doc.Format)
		require.Len(t, doc.Components, 2)
		assert.Equal(t, "Heading", doc.Components[0].Type())
		assert.Empty(t, doc.HTML)
	})

	t.Run("html", func(t *testing.T) {
		doc, err := s.GetDocument(context.Background(), "page", vo.FormatHTML)
		require.NoError(t, err)
		assert.Equal(t, vo.HTML("<h1>Title</h1><p>Body</p>"), doc.HTML)
		assert.Nil(t, doc.Components)
	})

	t.Run("markdown", func(t *testing.T) {
		doc, err := s.GetDocument(context.Background(), "page", vo.FormatMarkdown)
		require.NoError(t, err)
		assert.Contains(t, string(doc.Markdown), "# Title")
		assert.Contains(t, string(doc.Markdown), "Body")
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := s.GetDocument(context.Background(), "", vo.FormatJSON)
		assert.Error(t, err)
		_, err = s.GetDocument(context.Background(), "page", "pdf")
		assert.Error(t, err)
	})
}

func TestGetDocumentError(t *testing.T) {
	convErr := &converter.Error{Kind: converter.KindTransport, BlockID: "page", Err: errors.New("connection reset")}
	s := NewService(zaptest.NewLogger(t), failingConverter{err: convErr}, staticPreviewer{})

	doc, err := s.GetDocument(context.Background(), "page", vo.FormatJSON)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, convErr)
}

func TestGetBookmarkPreview(t *testing.T) {
	s := newTestService(t)

	preview, err := s.GetBookmarkPreview(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Example", preview.Title)

	preview, err = s.GetBookmarkPreview(context.Background(), "https://unknown.example.com")
	require.NoError(t, err)
	assert.Equal(t, &vo.BookmarkPreview{}, preview)

	_, err = s.GetBookmarkPreview(context.Background(), "ftp://example.com")
	assert.Error(t, err)
}
