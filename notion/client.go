package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL  = "https://api.notion.com"
	DefaultVersion  = "2022-06-28"
	DefaultPageSize = 100
)

// APIError is an error response of the Notion API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api: %d %s: %s", e.Status, e.Code, e.Message)
}

type ClientSettings struct {
	Token    string
	BaseURL  string
	Version  string
	PageSize int
}

// Client lists block children over the Notion REST API.
type Client struct {
	httpClient *http.Client
	settings   ClientSettings
}

func NewClient(settings ClientSettings, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.Version == "" {
		settings.Version = DefaultVersion
	}
	if settings.PageSize <= 0 || settings.PageSize > DefaultPageSize {
		settings.PageSize = DefaultPageSize
	}
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")
	return &Client{httpClient: httpClient, settings: settings}
}

type childrenPage struct {
	Results    []*Block `json:"results"`
	NextCursor *string  `json:"next_cursor"`
	HasMore    bool     `json:"has_more"`
}

// ListChildren pages through /v1/blocks/{id}/children, requesting the next
// page only once the previous one has been consumed.
func (c *Client) ListChildren(ctx context.Context, parentID string) iter.Seq2[*Block, error] {
	return func(yield func(*Block, error) bool) {
		cursor := ""
		for {
			page, err := c.getChildren(ctx, parentID, cursor)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, block := range page.Results {
				if !yield(block, nil) {
					return
				}
			}
			if !page.HasMore || page.NextCursor == nil || *page.NextCursor == "" {
				return
			}
			cursor = *page.NextCursor
		}
	}
}

func (c *Client) getChildren(ctx context.Context, parentID, cursor string) (*childrenPage, error) {
	query := url.Values{}
	query.Set("page_size", strconv.Itoa(c.settings.PageSize))
	if cursor != "" {
		query.Set("start_cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/v1/blocks/%s/children?%s", c.settings.BaseURL, url.PathEscape(parentID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.settings.Token)
	req.Header.Set("Notion-Version", c.settings.Version)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", parentID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Code = "http_error"
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		apiErr.Status = resp.StatusCode
		return nil, apiErr
	}

	page := &childrenPage{}
	if err := json.Unmarshal(body, page); err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			return nil, decodeErr
		}
		return nil, &DecodeError{What: "block children of " + parentID, Err: err}
	}
	return page, nil
}
