// Package main provides the entry point for the do2org CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chee/do2org/internal/config"
	"github.com/chee/do2org/internal/output"
	"github.com/chee/do2org/internal/pandoc"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version       string         `json:"version"`
	Toolchain     []checkResult  `json:"toolchain"`
	Configuration []checkResult  `json:"configuration"`
	Journal       []checkResult  `json:"journal"`
	Summary       *doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// doctorFlags holds the command-line flags for the doctor command.
type doctorFlags struct {
	json   bool
	quiet  bool
	pandoc string
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	flags := &doctorFlags{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that a conversion would succeed and suggest fixes",
		Long: `Check the do2org environment and suggest fixes.

Runs a series of health checks across three categories:
  TOOLCHAIN     - Pandoc binary availability and version
  CONFIGURATION - Config directory and config file parsing
  JOURNAL       - Resolved journal export file

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - Critical issue that needs attention

Examples:
  do2org doctor              # Run all health checks
  do2org doctor --quiet      # Only show failures and warnings
  do2org doctor --json       # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only show failures and warnings")
	cmd.Flags().StringVar(&flags.pandoc, "pandoc", "", "Path to the pandoc binary")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, flags *doctorFlags) error {
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), flags.json, isTTY).WithStderr(cmd.ErrOrStderr())

	result := gatherDoctorChecks(cmd.Context(), flags)

	if flags.json {
		return outputDoctorJSON(printer, result)
	}

	outputDoctorHuman(printer, result, flags.quiet)
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks(ctx context.Context, flags *doctorFlags) *doctorResult {
	// A broken config file is reported by its own check, so the zero
	// config is fine for resolving the other checks' inputs.
	cfg, cfgErr := config.Load()

	result := &doctorResult{
		Version:       version,
		Toolchain:     runToolchainChecks(ctx, cfg.ResolvePandoc(flags.pandoc)),
		Configuration: runConfigChecks(cfgErr),
		Journal:       runJournalChecks(cfg.ResolveJournal("")),
		Summary:       &doctorSummary{},
	}

	// Calculate summary
	allChecks := append(append(result.Toolchain, result.Configuration...), result.Journal...)
	for _, check := range allChecks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}

	return result
}

// runToolchainChecks performs converter toolchain checks.
func runToolchainChecks(ctx context.Context, bin string) []checkResult {
	checks := make([]checkResult, 0, 1)
	checks = append(checks, checkPandocBinary(ctx, bin))
	return checks
}

// checkPandocBinary checks that the resolved pandoc binary runs.
func checkPandocBinary(ctx context.Context, bin string) checkResult {
	cli := pandoc.CLI{Bin: bin}
	ver, err := cli.Version(ctx)
	if err != nil {
		return checkResult{
			Name:    "Pandoc",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Install pandoc from https://pandoc.org or set " + config.EnvPandoc,
		}
	}

	return checkResult{
		Name:    "Pandoc",
		Status:  checkPass,
		Message: ver,
	}
}

// runConfigChecks performs configuration checks.
func runConfigChecks(cfgErr error) []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkConfigDir())
	checks = append(checks, checkConfigFile(cfgErr))
	return checks
}

// checkConfigDir reports the resolved configuration directory.
func checkConfigDir() checkResult {
	return checkResult{
		Name:    "Config Directory",
		Status:  checkPass,
		Message: config.Dir(),
	}
}

// checkConfigFile checks that the config file, if present, parses.
func checkConfigFile(cfgErr error) checkResult {
	path := filepath.Join(config.Dir(), config.FileName)

	if cfgErr != nil {
		return checkResult{
			Name:    "Config File",
			Status:  checkFail,
			Message: cfgErr.Error(),
			Hint:    "Fix the YAML in " + path,
		}
	}

	if _, err := os.Stat(path); err != nil {
		return checkResult{
			Name:    "Config File",
			Status:  checkPass,
			Message: "no config file (defaults apply)",
		}
	}

	return checkResult{
		Name:    "Config File",
		Status:  checkPass,
		Message: "loaded " + path,
	}
}

// runJournalChecks performs journal export checks.
func runJournalChecks(journalPath string) []checkResult {
	checks := make([]checkResult, 0, 1)
	checks = append(checks, checkJournalFile(journalPath))
	return checks
}

// checkJournalFile checks that the resolved journal export exists.
func checkJournalFile(journalPath string) checkResult {
	info, err := os.Stat(journalPath)
	if err != nil {
		return checkResult{
			Name:    "Journal Export",
			Status:  checkWarn,
			Message: "not found at " + journalPath,
			Hint:    "Pass the export path to 'do2org convert' or set journal: in " + config.FileName,
		}
	}

	if info.IsDir() {
		return checkResult{
			Name:    "Journal Export",
			Status:  checkWarn,
			Message: journalPath + " is a directory",
			Hint:    "Point journal: at the JSON export file itself",
		}
	}

	return checkResult{
		Name:    "Journal Export",
		Status:  checkPass,
		Message: fmt.Sprintf("%s (%d bytes)", journalPath, info.Size()),
	}
}

// outputDoctorJSON outputs the doctor result as JSON.
func outputDoctorJSON(printer *output.Printer, result *doctorResult) error {
	data := map[string]any{
		"version":       result.Version,
		"toolchain":     result.Toolchain,
		"configuration": result.Configuration,
		"journal":       result.Journal,
		"summary": map[string]any{
			"passed":   result.Summary.Passed,
			"warnings": result.Summary.Warnings,
			"failed":   result.Summary.Failed,
		},
	}
	return printer.WriteJSON(data)
}

// outputDoctorHuman outputs the doctor result in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	// Header
	printer.Println()
	printer.Print("do2org doctor v%s\n", result.Version)

	// Toolchain checks
	printCheckSection(printer, "TOOLCHAIN", result.Toolchain, quiet)

	// Configuration checks
	printCheckSection(printer, "CONFIGURATION", result.Configuration, quiet)

	// Journal checks
	printCheckSection(printer, "JOURNAL", result.Journal, quiet)

	// Summary
	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(printer, checkPass), result.Summary.Passed,
		statusIcon(printer, checkWarn), result.Summary.Warnings,
		statusIcon(printer, checkFail), result.Summary.Failed,
	)
}

// printCheckSection prints a section of checks.
func printCheckSection(printer *output.Printer, title string, checks []checkResult, quiet bool) {
	// In quiet mode, skip sections with only passing checks
	if quiet {
		hasNonPass := false
		for _, check := range checks {
			if check.Status != checkPass {
				hasNonPass = true
				break
			}
		}
		if !hasNonPass {
			return
		}
	}

	printer.Section(title)

	for _, check := range checks {
		// In quiet mode, skip passing checks
		if quiet && check.Status == checkPass {
			continue
		}

		printer.Print("  %s  %s %s\n", statusIcon(printer, check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("     %s %s\n", hintPrefix(), check.Hint)
		}
	}
}

// statusIcon returns the icon for a check status.
func statusIcon(printer *output.Printer, status checkStatus) string {
	switch status {
	case checkPass:
		return printer.Pass()
	case checkWarn:
		return printer.Flag()
	case checkFail:
		return printer.Fail()
	default:
		return "??"
	}
}

// hintPrefix returns the prefix for hint lines.
func hintPrefix() string {
	return "->"
}
