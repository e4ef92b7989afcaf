// svgtext is a command-line tool for making SVG renderings of PDF pages searchable.
//
// The tool reads word bounding boxes from the PDF with pdftotext (poppler-utils),
// rescales them into the coordinate space of the SVG's viewBox and writes a copy
// of the SVG with a hidden element carrying the words as JSON. A viewer script
// reads that element to search and highlight text on an otherwise text-less image.
//
// Usage:
//
//	svgtext <input.svg> <input.pdf> <output.svg> [options]
//
// Options:
//
//	--config string    Path to a YAML configuration file
//	--refuse-existing  Fail if the SVG already has an element with the search data id
//	--words string     Path to save the mapped words as JSON for debugging purposes
//	-v, --verbose      Log debug details to stderr and check the PDF page count with pdfcpu
//
// Configuration (all keys optional):
//
//	extractor:
//	  command: pdftotext
//	  args: ["-bbox"]
//	element_id: search-data
//	attribute: data-words
//	origin: ignore          # ignore, offset or strict
//	aspect_tolerance: 0.01  # 0 disables the aspect ratio warning
//	refuse_existing: false  # default warns and adds another element
//	check_pdf: false        # parse the PDF to verify its page count
//
// Requires pdftotext on PATH unless extractor.command points elsewhere.
//
// Example:
//
//	pdftocairo -svg -f 3 -l 3 book.pdf page3.svg
//	pdfseparate -f 3 -l 3 book.pdf page3.pdf
//	svgtext page3.svg page3.pdf page3-search.svg
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
