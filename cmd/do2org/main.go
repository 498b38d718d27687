// Package main provides the entry point for the do2org CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chee/do2org/internal/envfile"
	"github.com/chee/do2org/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// colorMode reads the --color persistent flag from the command hierarchy,
// so subcommands stay independently testable without shared state.
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the do2org CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do2org",
		Short: "Convert a Day One journal export to an org-mode outline",
		Long: `do2org - Convert a Day One JSON export into one org-mode outline document.

The export's entries are grouped by year, month, and day and written as
nested org headings in calendar order. Each entry carries a :PROPERTIES:
block (moon phase, weather, music, location) and its text converted from
markdown to org markup via pandoc.

The outline goes to stdout so it can be piped or redirected; diagnostics
go to stderr.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Load .env.local (then .env, then the shared env file) for settings
	// that can't live in the environment. Real environment always wins.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return envfile.LoadChain()
	}

	// Add persistent --color flag (available to all subcommands)
	cmd.PersistentFlags().String("color", "auto", "Color diagnostics: auto, always, or never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}
