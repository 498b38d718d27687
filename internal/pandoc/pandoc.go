// Package pandoc converts marked-up text between formats by shelling out to
// the pandoc executable.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chee/do2org/internal/output"
)

// DefaultBin is the pandoc executable used when no explicit path is configured.
const DefaultBin = "pandoc"

// Options describe a single conversion: the source and target format names
// as pandoc knows them, and how far to demote headings in the output.
type Options struct {
	From                string
	To                  string
	ShiftHeadingLevelBy int
}

// Args returns the pandoc command-line arguments for the options.
func (o Options) Args() []string {
	return []string{
		"-f", o.From,
		"-t", o.To,
		fmt.Sprintf("--shift-heading-level-by=%d", o.ShiftHeadingLevelBy),
	}
}

// Converter converts a text document from one markup format to another.
// The rendering pipeline calls it once per entry that has text; tests
// substitute a fake so no pandoc binary is needed.
type Converter interface {
	Convert(ctx context.Context, text string, opts Options) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(ctx context.Context, text string, opts Options) (string, error)

// Convert implements Converter.
func (f ConverterFunc) Convert(ctx context.Context, text string, opts Options) (string, error) {
	return f(ctx, text, opts)
}

// CLI is a Converter backed by the pandoc executable.
// The zero value runs DefaultBin from PATH.
type CLI struct {
	// Bin is the pandoc executable to run. Empty means DefaultBin.
	Bin string
}

// Convert feeds text to pandoc on stdin and returns its stdout verbatim.
// The subprocess is started, fed, and read to completion on every call.
// Returns an *output.ExitError on failure with pandoc's stderr in the message.
func (c CLI) Convert(ctx context.Context, text string, opts Options) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin(), opts.Args()...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", c.wrapRunError(err, &stderr)
	}

	// Stdout must not be trimmed, the caller's line handling depends on
	// seeing the converter's output exactly as written.
	return stdout.String(), nil
}

// Version returns the first line of `pandoc --version`, which names the
// binary and its version number.
func (c CLI) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin(), "--version")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", c.wrapRunError(err, &stderr)
	}

	firstLine, _, _ := strings.Cut(stdout.String(), "\n")
	return strings.TrimSpace(firstLine), nil
}

// bin returns the configured executable, falling back to DefaultBin.
func (c CLI) bin() string {
	if c.Bin == "" {
		return DefaultBin
	}
	return c.Bin
}

// wrapRunError classifies a subprocess failure as a conversion error.
func (c CLI) wrapRunError(err error, stderr *bytes.Buffer) error {
	// Check if the binary is not found
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return output.NewConversionError(c.bin()+" not found: ensure pandoc is installed and in PATH", err)
	}

	// Pandoc ran but failed - include stderr in message
	errMsg := strings.TrimSpace(stderr.String())
	if errMsg == "" {
		errMsg = err.Error()
	}
	return output.NewConversionError("pandoc failed: "+errMsg, err)
}
