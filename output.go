package main

import (
	"fmt"
	"io"
	"os"
)

// FormatVerdict writes the verdict line for the invoking user.
func FormatVerdict(w io.Writer, verdict *Verdict, cfg *Config) {
	if cfg.Quiet {
		fmt.Fprintf(w, "%t\n", verdict.Approved)
		return
	}
	fmt.Fprintf(w, "PR #%d in %s approved: %t\n", verdict.PRNumber, verdict.Repository, verdict.Approved)
}

// DeclareOutput appends approved=<bool> to the GITHUB_OUTPUT file so
// the calling workflow can consume the verdict as a step output.
// Outside GitHub Actions the variable is unset and this is a no-op.
func DeclareOutput(verdict *Verdict) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open GITHUB_OUTPUT file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "approved=%t\n", verdict.Approved); err != nil {
		return fmt.Errorf("failed to write GITHUB_OUTPUT: %w", err)
	}

	return nil
}
