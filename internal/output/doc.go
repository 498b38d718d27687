// Package output provides structured output handling for the do2org CLI.
//
// This package handles both human-readable and JSON output formats. The
// converted document itself always goes to the destination writer untouched;
// everything here is for the diagnostics around it.
//
// # Printer
//
// The Printer is the primary interface for command diagnostics. It handles
// format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag on commands that support it),
// diagnostics are structured:
//
//	// Error: {"error": "message", "code": N}
//	// Warning: {"warning": "message"}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines one exit code per pipeline stage that can fail:
//
//	output.ExitSuccess    // 0: Success
//	output.ExitUsage      // 1: Usage error (bad args, unusable destination)
//	output.ExitInput      // 2: Input unavailable (journal cannot be read)
//	output.ExitDecode     // 3: Decode error (not a Day One export)
//	output.ExitConversion // 4: Conversion failure (pandoc missing or failed)
//	output.ExitInvariant  // 5: Invariant violation (internal state broken)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUsageError("creating output file: permission denied")
//	output.NewInputError("reading journal Journal.json", err)
//	output.NewDecodeError("entry 3: missing required field: creationDate")
//	output.NewConversionError("pandoc not found", err)
//	output.NewInvariantError("month 13 outside 1-12")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
