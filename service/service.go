package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/foomo/notion-jarkup/converter"
	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/foomo/notion-jarkup/render"
	"github.com/foomo/notion-jarkup/service/vo"
	"go.uber.org/zap"
)

type Service interface {
	GetDocument(ctx context.Context, blockID string, format vo.Format) (*vo.Document, error)
	GetBookmarkPreview(ctx context.Context, rawURL string) (*vo.BookmarkPreview, error)
}

// BlockConverter converts the subtree below a block.
type BlockConverter interface {
	ConvertBlock(ctx context.Context, blockID string) ([]jarkup.Component, error)
}

// BookmarkPreviewer looks up preview metadata for a URL, best effort.
type BookmarkPreviewer interface {
	FetchBookmarkPreview(ctx context.Context, url string) vo.BookmarkPreview
}

type service struct {
	l         *zap.Logger
	converter BlockConverter
	previewer BookmarkPreviewer
}

func NewService(l *zap.Logger, blockConverter BlockConverter, previewer BookmarkPreviewer) Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &service{
		l:         l,
		converter: blockConverter,
		previewer: previewer,
	}
}

func (s *service) GetDocument(ctx context.Context, blockID string, format vo.Format) (*vo.Document, error) {
	if blockID == "" {
		return nil, errors.New("block id is required")
	}
	format, err := vo.ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	components, err := s.converter.ConvertBlock(ctx, blockID)
	if err != nil {
		if converter.IsKind(err, converter.KindTransport) {
			s.l.Warn("failed to fetch blocks", zap.String("blockId", blockID), zap.Error(err))
		} else {
			s.l.Error("failed to convert blocks", zap.String("blockId", blockID), zap.Error(err))
		}
		return nil, err
	}

	doc := &vo.Document{
		BlockID: blockID,
		Format:  format,
	}
	switch format {
	case vo.FormatHTML:
		html, err := render.HTML(components)
		if err != nil {
			return nil, err
		}
		doc.HTML = vo.HTML(html)
	case vo.FormatMarkdown:
		markdown, err := render.Markdown(components)
		if err != nil {
			return nil, err
		}
		doc.Markdown = vo.Markdown(markdown)
	default:
		doc.Components = components
	}
	return doc, nil
}

func (s *service) GetBookmarkPreview(ctx context.Context, rawURL string) (*vo.BookmarkPreview, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}
	preview := s.previewer.FetchBookmarkPreview(ctx, rawURL)
	return &preview, nil
}
