package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cli/go-gh/pkg/api"

	"prgate/github/search"
)

// Client queries one repository's pull requests.
type Client struct {
	owner     string
	name      string
	host      string
	transport http.RoundTripper
}

// NewClient validates the owner/name form and returns a client bound
// to that repository. host may be empty to use gh's resolved default.
func NewClient(repo, host string) (*Client, error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository format: %q (want owner/name)", repo)
	}
	return &Client{owner: parts[0], name: parts[1], host: host}, nil
}

// clientOptions returns the go-gh options for this client, or nil
// when every default applies.
func (c *Client) clientOptions() *api.ClientOptions {
	if c.host == "" && c.transport == nil {
		return nil
	}
	return &api.ClientOptions{Host: c.host, Transport: c.transport}
}

// SearchApproved returns the open pull requests of the client's
// repository that have at least one approving review.
func (c *Client) SearchApproved(ctx context.Context) (*SearchResult, error) {
	query := search.NewBuilder().
		Repo(c.owner, c.name).
		Is("pr").
		Is("open").
		Review("approved").
		Build()

	return searchIssues(ctx, c.clientOptions(), query)
}

// Approved reports whether the given pull request is open with at
// least one approving review. The SearchResult is returned alongside
// so callers can write the raw-body artifact.
func (c *Client) Approved(ctx context.Context, prNumber int) (bool, *SearchResult, error) {
	result, err := c.SearchApproved(ctx)
	if err != nil {
		return false, nil, err
	}
	return result.Contains(prNumber), result, nil
}
