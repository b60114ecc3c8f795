package scrape

import (
	"strings"

	"github.com/foomo/notion-jarkup/service/vo"
	"golang.org/x/net/html"
)

// ExtractMetadata reads title, description, image and favicon from a parsed
// document. Open Graph tags win over the generic <title> and description.
func ExtractMetadata(doc *html.Node) vo.PageMetadata {
	var meta vo.PageMetadata

	meta.Title = extractTitle(doc)
	meta.Description = extractMetaContent(doc, "name", "description")

	if title := extractMetaContent(doc, "property", "og:title"); title != "" {
		meta.Title = title
	}
	if description := extractMetaContent(doc, "property", "og:description"); description != "" {
		meta.Description = description
	}
	meta.Image = extractMetaContent(doc, "property", "og:image")
	meta.Favicon = extractFavicon(doc)

	return meta
}

// extractTitle extracts the title from the HTML document
func extractTitle(doc *html.Node) string {
	var title string
	var findTitle func(*html.Node) bool

	findTitle = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.TrimSpace(sb.String())
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if findTitle(c) {
				return true
			}
		}
		return false
	}

	findTitle(doc)
	return title
}

// extractMetaContent returns the content of the first <meta> whose key
// attribute (name or property) equals value. Open Graph tags are often
// published with name= instead of property=, so both are accepted for og:*.
func extractMetaContent(doc *html.Node, key, value string) string {
	var content string
	var findMeta func(*html.Node) bool

	findMeta = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var matched bool
			var metaContent string
			for _, attr := range n.Attr {
				switch {
				case strings.EqualFold(attr.Key, key) && strings.EqualFold(attr.Val, value):
					matched = true
				case strings.HasPrefix(value, "og:") && attr.Key == "name" && strings.EqualFold(attr.Val, value):
					matched = true
				case attr.Key == "content":
					metaContent = strings.TrimSpace(attr.Val)
				}
			}
			if matched && metaContent != "" {
				content = metaContent
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if findMeta(c) {
				return true
			}
		}
		return false
	}

	findMeta(doc)
	return content
}

// extractFavicon returns the href of the first <link> whose rel contains the
// token "icon", falling back to an apple-touch-icon.
func extractFavicon(doc *html.Node) string {
	var icon, touchIcon string
	var findLink func(*html.Node)

	findLink = func(n *html.Node) {
		if icon != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, href string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "rel":
					rel = strings.ToLower(attr.Val)
				case "href":
					href = strings.TrimSpace(attr.Val)
				}
			}
			if href != "" {
				for _, token := range strings.Fields(rel) {
					switch token {
					case "icon":
						icon = href
					case "apple-touch-icon", "apple-touch-icon-precomposed":
						if touchIcon == "" {
							touchIcon = href
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findLink(c)
		}
	}

	findLink(doc)
	if icon != "" {
		return icon
	}
	return touchIcon
}
