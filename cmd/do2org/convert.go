// Package main provides the entry point for the do2org CLI.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chee/do2org/internal/config"
	"github.com/chee/do2org/internal/dayone"
	"github.com/chee/do2org/internal/export"
	"github.com/chee/do2org/internal/logging"
	"github.com/chee/do2org/internal/output"
	"github.com/chee/do2org/internal/pandoc"
	"github.com/chee/do2org/internal/timetree"
)

// convertFlags holds the command-line flags for the convert command.
type convertFlags struct {
	out     string
	pandoc  string
	verbose bool
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	return newConvertCmdInternal(nil)
}

// newConvertCmdInternal creates the convert command with optional converter injection.
// If conv is nil, a pandoc subprocess converter is created when the command runs.
func newConvertCmdInternal(conv pandoc.Converter) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [journal]",
		Short: "Convert a Day One export to an org-mode outline",
		Long: `Convert a Day One JSON export into one org-mode outline document.

The journal argument is the path to the export file. When omitted, the
configured journal path is used, falling back to ./Journal.json.

Examples:
  do2org convert                          # Convert ./Journal.json to stdout
  do2org convert export.json > diary.org  # Convert a named export
  do2org convert --out diary.org          # Write to a file directly
  do2org convert --pandoc /opt/bin/pandoc # Use a specific pandoc binary`,
		Args: cobra.MaximumNArgs(1),
		// The outline owns stdout, so failures must never dump the usage
		// block into it.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			journalArg := ""
			if len(args) == 1 {
				journalArg = args[0]
			}
			return runConvert(cmd, conv, flags, journalArg)
		},
	}

	cmd.Flags().StringVar(&flags.out, "out", "", "Write the outline to a file instead of stdout")
	cmd.Flags().StringVar(&flags.pandoc, "pandoc", "", "Path to the pandoc binary")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log conversion stages to stderr")

	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, conv pandoc.Converter, flags *convertFlags, journalArg string) error {
	isTTY := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.OutOrStdout()))
	printer := output.NewPrinter(cmd.OutOrStdout(), false, isTTY).WithStderr(cmd.ErrOrStderr())
	logger := logging.New(cmd.ErrOrStderr(), flags.verbose)

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		err := output.NewUsageError(cfgErr.Error())
		printer.Error(err)
		return err
	}

	journalPath := cfg.ResolveJournal(journalArg)
	if conv == nil {
		conv = pandoc.CLI{Bin: cfg.ResolvePandoc(flags.pandoc)}
	}

	data, readErr := os.ReadFile(journalPath)
	if readErr != nil {
		err := output.NewInputError(fmt.Sprintf("reading journal %s: %v", journalPath, readErr), readErr)
		printer.Error(err)
		return err
	}
	logger.Debug("read journal", "path", journalPath, "bytes", len(data))

	journal, decodeErr := dayone.DecodeJournal(data)
	if decodeErr != nil {
		printer.Error(decodeErr)
		return decodeErr
	}
	logger.Debug("decoded journal", "version", journal.Metadata.Version, "entries", len(journal.Entries))

	tree := timetree.Build(journal)
	logger.Debug("built time tree", "years", len(tree.Years), "entries", tree.EntryCount())

	dest, closeDest, openErr := openOutput(cmd, flags.out)
	if openErr != nil {
		printer.Error(openErr)
		return openErr
	}

	// Buffer the outline so each heading line doesn't hit the OS directly.
	buffered := bufio.NewWriter(dest)
	if renderErr := export.Render(cmd.Context(), buffered, tree, conv); renderErr != nil {
		_ = closeDest()
		printer.Error(renderErr)
		return renderErr
	}
	if flushErr := flushOutput(buffered, closeDest, flags.out); flushErr != nil {
		printer.Error(flushErr)
		return flushErr
	}
	logger.Debug("rendered outline", "entries", tree.EntryCount())

	if flags.out != "" {
		printer.Print("Converted %d entries to %s\n", tree.EntryCount(), flags.out)
	}
	return nil
}

// openOutput returns the outline destination and a close function.
// With --out, the named file is created; otherwise the command's stdout
// is used and close is a no-op.
func openOutput(cmd *cobra.Command, outFlag string) (io.Writer, func() error, error) {
	if outFlag == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	file, err := os.Create(outFlag)
	if err != nil {
		return nil, nil, output.NewInputError(fmt.Sprintf("creating output file %s: %v", outFlag, err), err)
	}
	return file, file.Close, nil
}

// flushOutput flushes the buffered outline and closes the destination.
func flushOutput(buffered *bufio.Writer, closeDest func() error, outFlag string) error {
	if err := buffered.Flush(); err != nil {
		_ = closeDest()
		return output.NewInputError(fmt.Sprintf("writing outline: %v", err), err)
	}
	if err := closeDest(); err != nil {
		return output.NewInputError(fmt.Sprintf("closing output file %s: %v", outFlag, err), err)
	}
	return nil
}
