package svgtext

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DetectAnnotation reports whether the SVG already contains an element with
// the given id, i.e. it was annotated by an earlier run.
func DetectAnnotation(svg, id string) bool {
	pattern := regexp.MustCompile(`\sid\s*=\s*["']` + regexp.QuoteMeta(id) + `["']`)
	return pattern.MatchString(svg)
}

var disableConfigDir sync.Once

// PageCount returns the number of pages in the PDF.
func PageCount(pdfPath string) (int, error) {
	// pdfcpu otherwise creates a config directory under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	f, err := os.Open(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	n, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return n, nil
}

// checkPageCount compares the extractor's page count with the one pdfcpu
// reads from the PDF itself.
func checkPageCount(log *slog.Logger, pdfPath string, extracted int) {
	n, err := PageCount(pdfPath)
	if err != nil {
		log.Debug("page count unavailable", "pdf", pdfPath, "error", err)
		return
	}
	if n != extracted {
		log.Warn("pdftotext page count differs from PDF page count",
			"pdf", pdfPath, "pdf_pages", n, "extracted_pages", extracted)
		return
	}
	log.Debug("page count verified", "pdf", pdfPath, "pages", n)
}
