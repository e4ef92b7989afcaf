package bbox

import (
	"bytes"
	"context"
	"os/exec"
)

// DefaultCommand is the extraction tool looked up on PATH.
const DefaultCommand = "pdftotext"

// Extractor runs the bounding-box extraction tool against a PDF
type Extractor struct {
	Command string   // Executable name or path (default pdftotext)
	Args    []string // Arguments placed before the PDF path (default -bbox)
}

// DefaultExtractor returns an extractor equivalent to `pdftotext -bbox <pdf> -`.
func DefaultExtractor() Extractor {
	return Extractor{
		Command: DefaultCommand,
		Args:    []string{"-bbox"},
	}
}

// Run invokes the tool synchronously and returns its standard output.
// The tool is asked to write to stdout ("-").
func (e Extractor) Run(ctx context.Context, pdfPath string) ([]byte, error) {
	command := e.Command
	if command == "" {
		command = DefaultCommand
	}
	args := make([]string, 0, len(e.Args)+2)
	args = append(args, e.Args...)
	args = append(args, pdfPath, "-")

	cmd := exec.CommandContext(ctx, command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &ExternalToolError{
			Command: command,
			Args:    args,
			Stderr:  stderr.String(),
			Err:     err,
		}
	}
	return stdout.Bytes(), nil
}

// Extract runs the extractor and parses up to limit pages of its output
// (0 = all).
func (e Extractor) Extract(ctx context.Context, pdfPath string, limit int) (Document, error) {
	out, err := e.Run(ctx, pdfPath)
	if err != nil {
		return Document{}, err
	}
	return ParsePages(out, limit)
}
