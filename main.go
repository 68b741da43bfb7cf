// Package main implements prgate, a CI gate that reports whether a
// pull request is currently open and carries an approving review.
//
// The check is one read-only call to the GitHub search API, scoped to
// open pull requests with review:approved in the target repository,
// followed by a membership test on the returned PR numbers. The raw
// response body is written to a file for inspection and the boolean
// verdict is declared to the calling workflow.
//
// By riding on gh-resolved credentials (via go-gh), the tool:
//   - Needs no token plumbing of its own in CI
//   - Works against GitHub Enterprise hosts via GH_HOST
//   - Stays a single short-lived process per invocation
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"prgate/github"
)

func main() {
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load user settings: %v\n", err)
	}

	var cli CLI
	cli.SetSettings(settings)
	kong.Parse(&cli,
		kong.Name("prgate"),
		kong.Description("Report whether a pull request is open and approved."),
		kong.UsageOnError(),
		kong.Vars{"version": Get().Short()},
	)

	cfg := cli.Config()

	ctx := context.Background()

	clientFactory := func(repo, host string) (SearchClient, error) {
		return github.NewClient(repo, host)
	}

	verdict, err := Run(ctx, cfg, clientFactory)
	if err != nil {
		log.Fatalf("%v", err)
	}

	FormatVerdict(os.Stdout, verdict, cfg)

	if err := DeclareOutput(verdict); err != nil {
		log.Fatalf("%v", err)
	}
}
