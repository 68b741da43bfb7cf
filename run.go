package main

import (
	"context"
	"fmt"
	"os"
)

// Verdict is the outcome of one approval check.
type Verdict struct {
	Repository string
	PRNumber   int
	Approved   bool
}

// Run executes the approval check: one search call, a membership test
// over the returned PR numbers, and the raw-body artifact. On error
// no artifact is written and no verdict is produced, so an
// infrastructure failure never reads as "not approved".
func Run(ctx context.Context, cfg *Config, clientFactory func(repo, host string) (SearchClient, error)) (*Verdict, error) {
	client, err := clientFactory(cfg.Repository, cfg.APIHost)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", cfg.Repository, err)
	}

	approved, result, err := client.Approved(ctx, cfg.PRNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check approval for %s#%d: %w", cfg.Repository, cfg.PRNumber, err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, result.Raw, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write query result to %s: %w", cfg.Output, err)
		}
	}

	return &Verdict{
		Repository: cfg.Repository,
		PRNumber:   cfg.PRNumber,
		Approved:   approved,
	}, nil
}
