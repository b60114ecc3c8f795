// Package enrich looks up page metadata for links and bookmarks. Every lookup
// is best effort: failures are logged and turn into empty values.
package enrich

import (
	"context"
	"fmt"
	"net/url"

	"github.com/foomo/notion-jarkup/metrics"
	"github.com/foomo/notion-jarkup/scrape"
	"github.com/foomo/notion-jarkup/service/vo"
	"go.uber.org/zap"
)

type Enricher struct {
	l       *zap.Logger
	fetcher scrape.Fetcher
	metrics *metrics.Metrics
}

func New(l *zap.Logger, fetcher scrape.Fetcher, m *metrics.Metrics) *Enricher {
	if l == nil {
		l = zap.NewNop()
	}
	if fetcher == nil {
		fetcher = scrape.NewHTTPFetcher(nil, "", 0)
	}
	return &Enricher{
		l:       l,
		fetcher: fetcher,
		metrics: m,
	}
}

// FetchFavicon returns the absolute favicon URL of the page at rawURL, or ""
// when the page cannot be fetched or declares none.
func (e *Enricher) FetchFavicon(ctx context.Context, rawURL string) string {
	meta, err := scrape.Scrape(ctx, e.fetcher, rawURL)
	e.metrics.EnrichmentFetched(metrics.OperationFavicon, err)
	if err != nil {
		e.l.Debug("favicon lookup failed", zap.String("url", rawURL), zap.Error(err))
		return ""
	}
	if meta.Favicon == "" {
		return ""
	}
	favicon, err := ResolveFavicon(meta.URL, meta.Favicon)
	if err != nil {
		e.l.Debug("invalid favicon reference", zap.String("url", rawURL), zap.String("favicon", meta.Favicon), zap.Error(err))
		return ""
	}
	return favicon
}

// FetchBookmarkPreview returns title, description and image of the page at
// rawURL. Fields the page does not declare, or all of them when the fetch
// fails, are left empty.
func (e *Enricher) FetchBookmarkPreview(ctx context.Context, rawURL string) vo.BookmarkPreview {
	meta, err := scrape.Scrape(ctx, e.fetcher, rawURL)
	e.metrics.EnrichmentFetched(metrics.OperationBookmark, err)
	if err != nil {
		e.l.Debug("bookmark preview failed", zap.String("url", rawURL), zap.Error(err))
		return vo.BookmarkPreview{}
	}
	return vo.BookmarkPreview{
		Title:       meta.Title,
		Description: meta.Description,
		Image:       meta.Image,
	}
}

// ResolveFavicon makes ref absolute. Absolute references are returned as they
// are, anything else is resolved against the origin of pageURL rather than
// its path.
func ResolveFavicon(pageURL, ref string) (string, error) {
	parsedRef, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("failed to parse favicon reference: %w", err)
	}
	if parsedRef.IsAbs() {
		return parsedRef.String(), nil
	}

	page, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse page URL: %w", err)
	}
	if page.Scheme == "" || page.Host == "" {
		return "", fmt.Errorf("page URL %q has no origin", pageURL)
	}
	origin := &url.URL{Scheme: page.Scheme, Host: page.Host, Path: "/"}
	return origin.ResolveReference(parsedRef).String(), nil
}
