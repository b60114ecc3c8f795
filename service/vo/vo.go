package vo

import (
	"fmt"

	"github.com/foomo/notion-jarkup/jarkup"
)

type Markdown string

type HTML string

type Format string

const (
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts the export formats by name; empty means json.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatHTML, FormatMarkdown:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// PageMetadata is what a fetched page declares about itself. Favicon is the
// reference as written in the page, possibly relative.
type PageMetadata struct {
	URL         string `json:"url"`                   // Final URL after redirects
	Title       string `json:"title,omitempty"`       // og:title, else <title>
	Description string `json:"description,omitempty"` // og:description, else meta description
	Image       string `json:"image,omitempty"`       // og:image
	Favicon     string `json:"favicon,omitempty"`     // <link rel="icon"> href
}

type BookmarkPreview struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Document is a converted block subtree in the requested format.
type Document struct {
	BlockID    string             `json:"blockId"`
	Format     Format             `json:"format"`
	Components []jarkup.Component `json:"components,omitempty"`
	HTML       HTML               `json:"html,omitempty"`
	Markdown   Markdown           `json:"markdown,omitempty"`
}
