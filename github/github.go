package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/cli/go-gh"
	"github.com/cli/go-gh/pkg/api"
)

// searchResponse matches the REST search endpoint's body. Items is a
// pointer so a body that lacks the field entirely can be told apart
// from an empty result set.
type searchResponse struct {
	TotalCount int     `json:"total_count"`
	Items      *[]Item `json:"items"`
}

// searchIssues performs one GET against the search endpoint. No
// pagination: a single page at the API maximum is requested.
func searchIssues(ctx context.Context, opts *api.ClientOptions, query string) (*SearchResult, error) {
	client, err := gh.RESTClient(opts)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	path := fmt.Sprintf("search/issues?q=%s&per_page=100", url.QueryEscape(query))

	resp, err := client.RequestWithContext(ctx, "GET", path, nil)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	return decodeSearchResult(body)
}

// decodeSearchResult parses a search response body. Valid JSON
// without an items field is rejected.
func decodeSearchResult(body []byte) (*SearchResult, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if resp.Items == nil {
		return nil, &ParseError{Reason: "missing items field"}
	}

	return &SearchResult{
		TotalCount: resp.TotalCount,
		Items:      *resp.Items,
		Raw:        body,
	}, nil
}
