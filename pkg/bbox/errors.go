package bbox

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPage indicates the extraction output has no <page> element.
var ErrNoPage = errors.New("no <page> in pdftotext output")

// ErrMalformed indicates output that is not well-formed markup.
var ErrMalformed = errors.New("malformed pdftotext output")

// ErrInvalidPageSize indicates a page without a usable width or height.
var ErrInvalidPageSize = errors.New("invalid page size")

// ExternalToolError represents a failed invocation of the extraction tool.
type ExternalToolError struct {
	Command string
	Args    []string
	Stderr  string
	Err     error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += " (output: " + firstLine(stderr) + ")"
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
