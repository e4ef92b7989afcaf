// Package svgtext embeds searchable word positions into SVG renderings of PDF pages.
//
// An SVG produced from a PDF page (for example by pdftocairo -svg or
// pdf2svg) usually draws text as glyph outlines, so viewers cannot search
// it. This package reads the words and their bounding boxes from the PDF
// with pdftotext -bbox, rescales each box from PDF points into the SVG
// viewBox, and injects a hidden element before the closing </svg> tag:
//
//	<g id="search-data" display="none" data-words='[{"t":"Hello","x":20.0,"y":40.0,"w":100.0,"h":40.0}]'></g>
//
// The data-words attribute holds a compact JSON array, HTML-escaped, with
// one entry per word in reading order. A script in the viewer reads the
// element at runtime to implement search and highlighting. The rest of the
// SVG is left byte-for-byte untouched.
//
// Key Features:
//
// - Independent horizontal and vertical scaling from page space to viewBox space
// - Blank words from the extraction output are skipped
// - Existing search data is detected and, on request, refused
// - Output is written atomically, a failed run never leaves a partial file
//
// Main Functions:
//
// - Inject: Annotates SVG content held in memory
// - InjectFile: Reads an SVG, annotates it and writes the result
package svgtext

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/moby/sys/atomicwriter"

	"github.com/gardar/svgtext/pkg/bbox"
)

// Result describes one annotation run
type Result struct {
	Viewport Viewport     // Target coordinate space
	Page     bbox.Page    // Source page as extracted
	Scale    ScaleFactors // Page to viewport factors
	Words    []WordBox    // Words in viewport coordinates
	SVG      []byte       // Annotated SVG
}

// Inject annotates the SVG with the words of the first page of the PDF.
func Inject(ctx context.Context, svg []byte, pdfPath string, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	log := getLogger(cfg)
	content := string(svg)

	vp, err := ReadViewport(content)
	if err != nil {
		return nil, err
	}

	var offsetX, offsetY float64
	if vp.HasOrigin() {
		switch cfg.Origin {
		case OriginStrict:
			return nil, svgError(fmt.Errorf("viewBox origin is (%g,%g), expected (0,0)", vp.MinX, vp.MinY))
		case OriginOffset:
			offsetX, offsetY = vp.MinX, vp.MinY
		default:
			log.Warn("viewBox origin is not (0,0); ignoring offset",
				"min_x", vp.MinX, "min_y", vp.MinY)
		}
	}

	if DetectAnnotation(content, cfg.ElementID) {
		if cfg.RefuseExisting {
			return nil, svgError(fmt.Errorf("%w (element '%s')", ErrAnnotationExists, cfg.ElementID))
		}
		log.Warn("SVG already has an element with the search data id; adding another",
			"id", cfg.ElementID)
	}

	doc, err := cfg.Extractor.Extract(ctx, pdfPath, 1)
	if err != nil {
		var toolErr *bbox.ExternalToolError
		if errors.As(err, &toolErr) {
			return nil, err
		}
		if errors.Is(err, bbox.ErrNoPage) || errors.Is(err, bbox.ErrInvalidPageSize) ||
			errors.Is(err, bbox.ErrMalformed) {
			return nil, &FormatError{Source: "pdftotext output", Err: err}
		}
		return nil, fmt.Errorf("failed to parse pdftotext output: %w", err)
	}
	page, err := doc.FirstPage()
	if err != nil {
		return nil, &FormatError{Source: "pdftotext output", Err: err}
	}

	if doc.PageCount > 1 {
		log.Warn("PDF has more than one page; only the first page is annotated", "pdf", pdfPath, "pages", doc.PageCount)
	}
	if cfg.CheckPDF {
		checkPageCount(log, pdfPath, doc.PageCount)
	}

	scale, err := NewScaleFactors(vp, page)
	if err != nil {
		return nil, &FormatError{Source: "pdftotext output", Err: err}
	}
	if cfg.AspectTolerance > 0 && scale.AspectSkew() > cfg.AspectTolerance {
		log.Warn("aspect ratio of SVG and PDF page differ; scaling is non-uniform",
			"scale_x", scale.X, "scale_y", scale.Y)
	}
	log.Debug("mapping words",
		"viewbox_w", vp.Width, "viewbox_h", vp.Height,
		"page_w", page.Width, "page_h", page.Height,
		"words", len(page.Words), "scale", scale.String())

	words := MapWords(page.Words, scale, offsetX, offsetY)

	annotation, err := RenderAnnotation(words, cfg)
	if err != nil {
		return nil, err
	}
	out, err := Splice(content, annotation)
	if err != nil {
		return nil, err
	}

	return &Result{
		Viewport: vp,
		Page:     page,
		Scale:    scale,
		Words:    words,
		SVG:      []byte(out),
	}, nil
}

// InjectFile reads svgPath, annotates it with the words of pdfPath and
// writes the result to outPath, replacing any existing file. Nothing is
// written when annotation fails.
func InjectFile(ctx context.Context, svgPath, pdfPath, outPath string, cfg Config) (*Result, error) {
	svg, err := os.ReadFile(svgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SVG: %w", err)
	}

	res, err := Inject(ctx, svg, pdfPath, cfg)
	if err != nil {
		return nil, err
	}

	if err := atomicwriter.WriteFile(outPath, res.SVG, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output SVG: %w", err)
	}
	getLogger(cfg).Debug("wrote annotated SVG", "path", outPath, "bytes", len(res.SVG))
	return res, nil
}

// getLogger returns the configured logger, defaulting to slog.Default().
func getLogger(cfg Config) *slog.Logger {
	if cfg.Logger == nil {
		return slog.Default()
	}
	return cfg.Logger
}
