package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// CLI declares the command-line surface. Repository and PR number can
// come from the environment so a workflow step needs no explicit
// flags.
type CLI struct {
	Repo    string           `help:"Repository to query (owner/name)." short:"R" env:"GITHUB_REPOSITORY" required:""`
	PR      int              `help:"Pull request number to check." short:"p" env:"PR_NUMBER" required:""`
	Output  string           `help:"Path for the raw query-result artifact." short:"o" default:"query-result.json"`
	APIHost string           `help:"GitHub API host override." env:"GH_HOST"`
	Quiet   bool             `help:"Print only the bare verdict." short:"q"`
	Version kong.VersionFlag `help:"Show version information."`

	// Internal field for settings (not a flag).
	settings Settings `kong:"-"`
}

// SetSettings sets the user settings applied in AfterApply.
func (c *CLI) SetSettings(settings Settings) {
	c.settings = settings
}

// Validate rejects non-positive PR numbers.
func (c *CLI) Validate() error {
	if c.PR <= 0 {
		return fmt.Errorf("pull request number must be positive, got %d", c.PR)
	}
	return nil
}

// AfterApply applies settings precedence after CLI parsing: flags and
// environment beat the settings file, which beats built-in defaults.
func (c *CLI) AfterApply() error {
	if c.APIHost == "" && c.settings.APIHost != "" {
		c.APIHost = c.settings.APIHost
	}
	if c.Output == defaultOutputPath && c.settings.Output != "" {
		c.Output = c.settings.Output
	}
	return nil
}

// Config returns the resolved runtime configuration.
func (c *CLI) Config() *Config {
	return &Config{
		Repository: c.Repo,
		PRNumber:   c.PR,
		Output:     c.Output,
		APIHost:    c.APIHost,
		Quiet:      c.Quiet,
	}
}
