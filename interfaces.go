package main

import (
	"context"

	"prgate/github"
)

// SearchClient defines the GitHub operation the gate depends on: one
// approval check returning the verdict and the search result whose
// raw body backs the inspection artifact.
type SearchClient interface {
	Approved(ctx context.Context, prNumber int) (bool, *github.SearchResult, error)
}
