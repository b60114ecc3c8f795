package scrape

import (
	"bytes"
	"context"
	"fmt"

	"github.com/foomo/notion-jarkup/service/vo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Scrape downloads a page and extracts its metadata. The body is decoded from
// the charset announced by the response or the document before parsing.
func Scrape(ctx context.Context, fetcher Fetcher, url string) (*vo.PageMetadata, error) {
	result, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	reader, err := charset.NewReader(bytes.NewReader(result.Body), result.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}

	doc, err := html.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := ExtractMetadata(doc)
	meta.URL = result.URL
	return &meta, nil
}
