// Package converter turns a Notion block tree into jarkup components.
//
// A conversion walks the tree depth first in document order, one block at a
// time. List runs are merged and table header rows are split off while
// walking, so the order of the source must be preserved. Failures to list
// children abort the conversion; metadata lookups for links and bookmarks
// never do.
package converter

import (
	"context"
	"time"

	"github.com/foomo/notion-jarkup/jarkup"
	"github.com/foomo/notion-jarkup/metrics"
	"github.com/foomo/notion-jarkup/notion"
	"github.com/foomo/notion-jarkup/service/vo"
	"go.uber.org/zap"
)

const DefaultMaxDepth = 64

type Config struct {
	// EnableUnsupportedBlock emits a placeholder for block types that have no
	// component instead of dropping them.
	EnableUnsupportedBlock bool `yaml:"enableUnsupportedBlock"`
	MaxDepth               int  `yaml:"maxDepth"`
}

func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
	}
}

// Enricher looks up page metadata. Implementations return empty values on
// failure.
type Enricher interface {
	FetchFavicon(ctx context.Context, url string) string
	FetchBookmarkPreview(ctx context.Context, url string) vo.BookmarkPreview
}

type noopEnricher struct{}

func (noopEnricher) FetchFavicon(context.Context, string) string { return "" }
func (noopEnricher) FetchBookmarkPreview(context.Context, string) vo.BookmarkPreview {
	return vo.BookmarkPreview{}
}

type Converter struct {
	l        *zap.Logger
	source   notion.BlockSource
	enricher Enricher
	metrics  *metrics.Metrics
	config   Config
}

func New(l *zap.Logger, source notion.BlockSource, enricher Enricher, m *metrics.Metrics, config Config) *Converter {
	if l == nil {
		l = zap.NewNop()
	}
	if enricher == nil {
		enricher = noopEnricher{}
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Converter{
		l:        l,
		source:   source,
		enricher: enricher,
		metrics:  m,
		config:   config,
	}
}

// ConvertBlock converts the children of blockID, recursively, into an ordered
// component list. On error no partial output is returned; the error is an
// *Error. Wrap ctx with a deadline to bound the whole walk.
func (c *Converter) ConvertBlock(ctx context.Context, blockID string) ([]jarkup.Component, error) {
	start := time.Now()
	c.l.Debug("converting block", zap.String("blockId", blockID))

	components, err := c.convertChildren(ctx, blockID, 0)
	c.metrics.ConversionFinished(start, err)
	if err != nil {
		return nil, err
	}

	c.l.Debug("converted block",
		zap.String("blockId", blockID),
		zap.Int("components", len(components)),
		zap.Duration("duration", time.Since(start)),
	)
	return components, nil
}

func (c *Converter) convertChildren(ctx context.Context, parentID string, depth int) ([]jarkup.Component, error) {
	if depth > c.config.MaxDepth {
		return nil, &Error{Kind: KindParse, BlockID: parentID, Err: ErrMaxDepthExceeded}
	}

	f := &frame{c: c, ctx: ctx, depth: depth}
	for block, err := range c.source.ListChildren(ctx, parentID) {
		if err != nil {
			return nil, wrapError(parentID, err)
		}
		c.metrics.BlockConverted(string(block.Type()))
		if err := block.Accept(f); err != nil {
			return nil, wrapError(block.ID, err)
		}
	}
	return f.out, nil
}
