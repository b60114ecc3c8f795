package enrich

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foomo/notion-jarkup/metrics"
	"github.com/foomo/notion-jarkup/scrape"
	"github.com/foomo/notion-jarkup/service/vo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// pageFetcher serves fixed bodies keyed by URL; unknown URLs fail.
type pageFetcher map[string]string

func (f pageFetcher) Fetch(_ context.Context, rawURL string) (*scrape.FetchResult, error) {
	body, ok := f[rawURL]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &scrape.FetchResult{
		URL:         rawURL,
		Body:        []byte(body),
		ContentType: "text/html; charset=utf-8",
		StatusCode:  http.StatusOK,
	}, nil
}

func TestResolveFavicon(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "root relative", page: "https://example.com/articles/x", ref: "/fav.ico", want: "https://example.com/fav.ico"},
		{name: "path relative uses origin", page: "https://example.com/articles/x", ref: "fav.ico", want: "https://example.com/fav.ico"},
		{name: "absolute kept", page: "https://example.com/articles/x", ref: "https://cdn.example.net/i.png", want: "https://cdn.example.net/i.png"},
		{name: "scheme relative", page: "http://example.com/a/b", ref: "//cdn.example.net/i.png", want: "http://cdn.example.net/i.png"},
		{name: "port kept", page: "http://localhost:8080/a/b", ref: "/fav.ico", want: "http://localhost:8080/fav.ico"},
		{name: "page without origin", page: "/relative/only", ref: "/fav.ico", wantErr: true},
		{name: "bad reference", page: "https://example.com", ref: "%zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFavicon(tt.page, tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchFavicon(t *testing.T) {
	m := metrics.New(nil)
	e := New(zaptest.NewLogger(t), pageFetcher{
		"https://example.com/articles/x": `<html><head><link rel="icon" href="/fav.ico"></head></html>`,
		"https://example.com/plain":      `<html><head><title>No icon</title></head></html>`,
	}, m)

	assert.Equal(t, "https://example.com/fav.ico", e.FetchFavicon(context.Background(), "https://example.com/articles/x"))
	assert.Empty(t, e.FetchFavicon(context.Background(), "https://example.com/plain"))
	assert.Empty(t, e.FetchFavicon(context.Background(), "https://unreachable.example.com/"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.EnrichmentFetches.WithLabelValues(metrics.OperationFavicon, metrics.ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EnrichmentFetches.WithLabelValues(metrics.OperationFavicon, metrics.ResultError)), 0)
}

func TestFetchBookmarkPreview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head>
			<title>Fallback</title>
			<meta name="description" content="Plain">
			<meta property="og:title" content="Post title">
			<meta property="og:image" content="/cover.png">
		</head></html>`)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	e := New(zaptest.NewLogger(t), scrape.NewHTTPFetcher(server.Client(), "", 0), nil)

	t.Run("og wins", func(t *testing.T) {
		got := e.FetchBookmarkPreview(context.Background(), server.URL+"/post")
		assert.Equal(t, vo.BookmarkPreview{
			Title:       "Post title",
			Description: "Plain",
			Image:       "/cover.png",
		}, got)
	})

	t.Run("failure yields empty preview", func(t *testing.T) {
		assert.Equal(t, vo.BookmarkPreview{}, e.FetchBookmarkPreview(context.Background(), server.URL+"/broken"))
		assert.Equal(t, vo.BookmarkPreview{}, e.FetchBookmarkPreview(context.Background(), "not a url"))
	})
}
