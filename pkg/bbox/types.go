package bbox

// Document is the parsed output of one extraction run
type Document struct {
	Title     string            // Document title from the head section
	Metadata  map[string]string // meta name/content pairs (Producer, CreationDate, ...)
	Pages     []Page            // Pages in document order
	PageCount int               // <page> elements seen, including ones not parsed
}

// FirstPage returns the first page in document order.
func (d Document) FirstPage() (Page, error) {
	if len(d.Pages) == 0 {
		return Page{}, ErrNoPage
	}
	return d.Pages[0], nil
}

// WordCount returns the number of words across all pages.
func (d Document) WordCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Words)
	}
	return n
}

// Page is one page of extracted words.
// Corresponds to the <page> element.
type Page struct {
	Width  float64 // Page width in PDF points
	Height float64 // Page height in PDF points
	Words  []Word  // Non-blank words in reading order
}

// Word is a single word with its bounding box.
// Corresponds to the <word> element.
type Word struct {
	Text string      // Trimmed word text, never empty
	BBox BoundingBox // Word extremes in page coordinates
}

// BoundingBox is a rectangle in page coordinates with the origin at the
// top-left corner.
type BoundingBox struct {
	XMin float64 // Left coordinate
	YMin float64 // Top coordinate
	XMax float64 // Right coordinate
	YMax float64 // Bottom coordinate
}

// NewBoundingBox creates a bounding box from its extremes.
func NewBoundingBox(xMin, yMin, xMax, yMax float64) BoundingBox {
	return BoundingBox{
		XMin: xMin,
		YMin: yMin,
		XMax: xMax,
		YMax: yMax,
	}
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.YMax - b.YMin }
