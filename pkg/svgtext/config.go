package svgtext

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/gardar/svgtext/pkg/bbox"
)

// OriginPolicy controls how a non-zero viewBox origin is handled
type OriginPolicy string

const (
	OriginIgnore OriginPolicy = "ignore" // use width/height only, warn on a non-zero origin
	OriginOffset OriginPolicy = "offset" // shift mapped boxes by min-x/min-y
	OriginStrict OriginPolicy = "strict" // reject a non-zero origin
)

// Config holds user options for annotating an SVG
type Config struct {
	Extractor       bbox.Extractor // Extraction tool invocation
	ElementID       string         // id of the injected element
	Attribute       string         // data attribute carrying the words
	Origin          OriginPolicy   // viewBox origin handling
	AspectTolerance float64        // warn when sx/sy differs from 1 by more than this (0 disables)
	RefuseExisting  bool           // fail if the SVG already has an element with ElementID
	CheckPDF        bool           // cross-check the page count with pdfcpu (parses the whole PDF)
	Logger          *slog.Logger   // nil = slog.Default()
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Extractor:       bbox.DefaultExtractor(),
		ElementID:       "search-data",
		Attribute:       "data-words",
		Origin:          OriginIgnore,
		AspectTolerance: 0.01,
		RefuseExisting:  false,
		CheckPDF:        false,
		Logger:          nil,
	}
}

var attrName = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)

// Validate checks the config for values that would produce broken markup.
func (c Config) Validate() error {
	if c.ElementID == "" {
		return fmt.Errorf("element id must not be empty")
	}
	if !attrName.MatchString(c.Attribute) {
		return fmt.Errorf("invalid attribute name %q", c.Attribute)
	}
	switch c.Origin {
	case "", OriginIgnore, OriginOffset, OriginStrict:
	default:
		return fmt.Errorf("unknown origin policy %q (must be ignore, offset or strict)", c.Origin)
	}
	if c.AspectTolerance < 0 {
		return fmt.Errorf("aspect tolerance must not be negative, got %g", c.AspectTolerance)
	}
	return nil
}
