package svgtext

import (
	"errors"
	"fmt"
)

var (
	// ErrNoViewport indicates the SVG has no viewBox attribute.
	ErrNoViewport = errors.New("no viewBox in SVG")
	// ErrNoClosingTag indicates the SVG has no </svg> to inject before.
	ErrNoClosingTag = errors.New("no </svg> closing tag in SVG")
	// ErrAnnotationExists indicates the SVG already has an element with the
	// configured id.
	ErrAnnotationExists = errors.New("SVG already contains an element with the search data id")
)

// FormatError reports an input that does not have the expected structure.
type FormatError struct {
	Source string // "svg" or "pdftotext output"
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func svgError(err error) *FormatError {
	return &FormatError{Source: "svg", Err: err}
}
